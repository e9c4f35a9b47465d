package hostRoutes

import (
	hostController "wildcamp/controllers/host"

	"github.com/gofiber/fiber/v2"
)

func SetupHostRoutes(app *fiber.App) {
	app.Get("/api/hosts/:id", hostController.GetHost)
}

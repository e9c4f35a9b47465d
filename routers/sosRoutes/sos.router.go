package sosRoutes

import (
	sosController "wildcamp/controllers/sos"

	"github.com/gofiber/fiber/v2"
)

func SetupSosRoutes(app *fiber.App) {
	app.Post("/api/sos", sosController.SubmitAlert)
}

package campsiteRoutes

import (
	campsiteController "wildcamp/controllers/campsite"

	"github.com/gofiber/fiber/v2"
)

func SetupCampsiteRoutes(app *fiber.App) {
	campsiteGroup := app.Group("/api/campsites")

	campsiteGroup.Get("/", campsiteController.ListCampsites)
	// Registered before /:id so "map" is not matched as a campsite id
	campsiteGroup.Get("/map/all", campsiteController.GetMapCampsites)
	campsiteGroup.Get("/:id", campsiteController.GetCampsite)
}

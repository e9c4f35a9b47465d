package categoryRoutes

import (
	categoryController "wildcamp/controllers/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	app.Get("/api/categories", categoryController.ListCategories)
}

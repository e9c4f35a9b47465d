package reviewRoutes

import (
	reviewController "wildcamp/controllers/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	app.Post("/api/reviews", reviewController.SubmitReview)
}

package bookingRoutes

import (
	bookingController "wildcamp/controllers/booking"

	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(app *fiber.App) {
	bookingGroup := app.Group("/api/bookings")

	bookingGroup.Post("/", bookingController.CreateBooking)
	bookingGroup.Get("/:id", bookingController.GetBooking)
}

package sosController

import (
	"wildcamp/database"
	"wildcamp/middleware"
	"wildcamp/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitAlert records a distress signal with its last known position.
// This is a write-only log; no notification or escalation happens here.
func SubmitAlert(c *fiber.Ctx) error {
	reqData := new(struct {
		BookingID uint    `json:"booking_id"`
		UserName  string  `json:"user_name"`
		UserPhone string  `json:"user_phone"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Message   string  `json:"message"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	alert := models.SosAlert{
		BookingID: reqData.BookingID,
		UserName:  reqData.UserName,
		UserPhone: reqData.UserPhone,
		Latitude:  reqData.Latitude,
		Longitude: reqData.Longitude,
		Message:   reqData.Message,
		Status:    models.SosActive,
	}
	if err := database.Database.Db.Create(&alert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit SOS alert!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SOS alert sent!", fiber.Map{
		"alert_id": alert.ID,
	})
}

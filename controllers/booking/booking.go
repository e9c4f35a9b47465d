package bookingController

import (
	"errors"
	"log"
	"wildcamp/database"
	"wildcamp/middleware"
	"wildcamp/models"
	"wildcamp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingDetail merges a booking with the campsite's name and location
type BookingDetail struct {
	models.Booking
	CampsiteName      *string  `json:"campsite_name"`
	CampsiteAddress   *string  `json:"campsite_address"`
	CampsiteLatitude  *float64 `json:"campsite_latitude"`
	CampsiteLongitude *float64 `json:"campsite_longitude"`
}

// CreateBooking creates a pending reservation and freezes its total price.
// Overlapping date ranges on the same campsite are all accepted; there is no
// availability check.
func CreateBooking(c *fiber.Ctx) error {
	reqData := new(struct {
		CampsiteID      uint   `json:"campsite_id"`
		UserName        string `json:"user_name"`
		UserEmail       string `json:"user_email"`
		UserPhone       string `json:"user_phone"`
		CheckInDate     string `json:"check_in_date"`
		CheckOutDate    string `json:"check_out_date"`
		Guests          int    `json:"guests"`
		HasPet          bool   `json:"has_pet"`
		SpecialRequests string `json:"special_requests"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var campsite models.Campsite
	if err := db.Where("id = ? AND status = ?", reqData.CampsiteID, models.CampsiteActive).
		First(&campsite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Campsite not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch campsite!", nil)
	}

	// An inverted date range is stored as-is: nights and total price go
	// non-positive rather than being rejected
	nights, err := utils.CalculateNights(reqData.CheckInDate, reqData.CheckOutDate)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date format! Use YYYY-MM-DD.", nil)
	}
	totalPrice := utils.CalculateTotalPrice(nights, campsite.PricePerNight)

	booking := models.Booking{
		Reference:       utils.NewBookingReference(),
		CampsiteID:      campsite.ID,
		UserName:        reqData.UserName,
		UserEmail:       reqData.UserEmail,
		UserPhone:       reqData.UserPhone,
		CheckInDate:     reqData.CheckInDate,
		CheckOutDate:    reqData.CheckOutDate,
		Guests:          reqData.Guests,
		TotalPrice:      totalPrice,
		HasPet:          reqData.HasPet,
		SpecialRequests: reqData.SpecialRequests,
		PaymentStatus:   models.PaymentPending,
		BookingStatus:   models.BookingPending,
	}
	if err := db.Create(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create booking!", nil)
	}

	// Confirmation mail is best effort and never blocks the response
	go func(b models.Booking, cs models.Campsite) {
		if err := utils.SendBookingConfirmation(b, cs); err != nil {
			log.Printf("Booking %d: confirmation email failed: %v", b.ID, err)
		}
	}(booking, campsite)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking created successfully!", fiber.Map{
		"booking_id":        booking.ID,
		"booking_reference": booking.Reference,
		"total_price":       totalPrice,
		"nights":            nights,
	})
}

// GetBooking returns a booking of any status merged with campsite location
func GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.Database.Db

	var booking BookingDetail
	result := db.Raw(`
		SELECT
			b.*,
			c.name AS campsite_name,
			c.address AS campsite_address,
			c.latitude AS campsite_latitude,
			c.longitude AS campsite_longitude
		FROM bookings b
		LEFT JOIN campsites c ON b.campsite_id = c.id
		WHERE b.id = ?`, id).Scan(&booking)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch booking!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking fetched!", booking)
}

package reviewController

import (
	"log"
	"wildcamp/database"
	"wildcamp/middleware"
	"wildcamp/models"
	"wildcamp/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitReview inserts the review as submitted and overwrites the campsite's
// denormalized rating and review_count from the full review set. The rating
// range and the booking link are not checked; the two statements are
// sequential, not transactional.
func SubmitReview(c *fiber.Ctx) error {
	reqData := new(struct {
		CampsiteID        uint   `json:"campsite_id"`
		BookingID         *uint  `json:"booking_id"`
		UserName          string `json:"user_name"`
		Rating            int    `json:"rating"`
		Comment           string `json:"comment"`
		CleanlinessRating int    `json:"cleanliness_rating"`
		LocationRating    int    `json:"location_rating"`
		SafetyRating      int    `json:"safety_rating"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	review := models.Review{
		CampsiteID:        reqData.CampsiteID,
		BookingID:         reqData.BookingID,
		UserName:          reqData.UserName,
		Rating:            reqData.Rating,
		Comment:           reqData.Comment,
		CleanlinessRating: reqData.CleanlinessRating,
		LocationRating:    reqData.LocationRating,
		SafetyRating:      reqData.SafetyRating,
	}
	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	if err := utils.RecomputeCampsiteRating(db, reqData.CampsiteID); err != nil {
		// The review is already stored; the nightly reconciliation pass
		// repairs the aggregate
		log.Printf("Campsite %d: rating recompute failed: %v", reqData.CampsiteID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", review)
}

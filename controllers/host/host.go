package hostController

import (
	"errors"
	"time"
	"wildcamp/database"
	"wildcamp/middleware"
	"wildcamp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// HostCampsite is an active campsite row with its primary image, as listed on
// a host profile
type HostCampsite struct {
	ID                   uint      `json:"id"`
	CategoryID           uint      `json:"category_id"`
	HostID               uint      `json:"host_id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Address              string    `json:"address"`
	Latitude             float64   `json:"latitude"`
	Longitude            float64   `json:"longitude"`
	Region               string    `json:"region"`
	DifficultyLevel      string    `json:"difficulty_level"`
	PricePerNight        float64   `json:"price_per_night"`
	PricePerHour         *float64  `json:"price_per_hour"`
	MaxCapacity          int       `json:"max_capacity"`
	CarAccessible        bool      `json:"car_accessible"`
	WaterAvailable       bool      `json:"water_available"`
	ElectricityAvailable bool      `json:"electricity_available"`
	ToiletAvailable      bool      `json:"toilet_available"`
	PetAllowed           bool      `json:"pet_allowed"`
	FireAllowed          bool      `json:"fire_allowed"`
	SmokingAllowed       bool      `json:"smoking_allowed"`
	Rating               float64   `json:"rating"`
	ReviewCount          int       `json:"review_count"`
	Views                int       `json:"views"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`

	PrimaryImage *string `json:"primary_image"`
}

// HostDetail merges the host profile with its active campsites
type HostDetail struct {
	models.Host
	Campsites []HostCampsite `json:"campsites"`
}

// GetHost returns the host profile and their active campsites by rating
func GetHost(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.Database.Db

	var host models.Host
	if err := db.First(&host, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Host not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch host!", nil)
	}

	campsites := []HostCampsite{}
	if err := db.Raw(`
		SELECT
			c.*,
			(SELECT image_url FROM campsite_images WHERE campsite_id = c.id AND is_primary = true LIMIT 1) AS primary_image
		FROM campsites c
		WHERE c.host_id = ? AND c.status = 'active'
		ORDER BY c.rating DESC`, id).Scan(&campsites).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch host campsites!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Host fetched!", HostDetail{
		Host:      host,
		Campsites: campsites,
	})
}

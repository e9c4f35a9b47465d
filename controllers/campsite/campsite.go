package campsiteController

import (
	"strconv"
	"strings"
	"time"
	"wildcamp/database"
	"wildcamp/middleware"
	"wildcamp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CampsiteListItem is a campsite row enriched with category, host contact and
// the primary image, as served by the listing and map endpoints
type CampsiteListItem struct {
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

	CategoryName *string `json:"category_name"`
	HostName     *string `json:"host_name"`
	HostPhone    *string `json:"host_phone"`
	PrimaryImage *string `json:"primary_image"`
}

// CampsiteDetail adds the full category/host fields plus images and reviews
type CampsiteDetail struct {
	CampsiteListItem
	CategoryDescription *string `json:"category_description"`
	HostEmail           *string `json:"host_email"`
	HostDescription     *string `json:"host_description"`
	HostProfileImage    *string `json:"host_profile_image"`

	// Filled by separate queries, never part of the row scan
	Images  []models.CampsiteImage `gorm:"-" json:"images"`
	Reviews []models.Review        `gorm:"-" json:"reviews"`
}

// MapCampsite is the trimmed row set served to the map overlay
type MapCampsite struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
	CategoryID    uint    `json:"category_id"`
	CategoryName  *string `json:"category_name"`
	PrimaryImage  *string `json:"primary_image"`
}

const primaryImageSubquery = `(SELECT image_url FROM campsite_images WHERE campsite_id = c.id AND is_primary = true LIMIT 1) AS primary_image`

// ListCampsites returns all active campsites matching the supplied filters.
// Filters combine with AND; an omitted parameter imposes no constraint, and
// boolean filters are presence-triggered (any value means "must be true").
func ListCampsites(c *fiber.Ctx) error {
	db := database.Database.Db

	var query strings.Builder
	query.WriteString(`
		SELECT
			c.*,
			cat.name AS category_name,
			h.name AS host_name,
			h.phone AS host_phone,
			` + primaryImageSubquery + `
		FROM campsites c
		LEFT JOIN categories cat ON c.category_id = cat.id
		LEFT JOIN hosts h ON c.host_id = h.id
		WHERE c.status = 'active'`)

	var params []interface{}

	if category := c.Query("category"); category != "" {
		query.WriteString(" AND c.category_id = ?")
		params = append(params, category)
	}
	if region := c.Query("region"); region != "" {
		query.WriteString(" AND c.region = ?")
		params = append(params, region)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query.WriteString(" AND c.difficulty_level = ?")
		params = append(params, difficulty)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query.WriteString(" AND c.price_per_night >= ?")
			params = append(params, v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query.WriteString(" AND c.price_per_night <= ?")
			params = append(params, v)
		}
	}
	if c.Query("car_accessible") != "" {
		query.WriteString(" AND c.car_accessible = true")
	}
	if c.Query("water_available") != "" {
		query.WriteString(" AND c.water_available = true")
	}
	if c.Query("electricity_available") != "" {
		query.WriteString(" AND c.electricity_available = true")
	}
	if c.Query("pet_allowed") != "" {
		query.WriteString(" AND c.pet_allowed = true")
	}

	query.WriteString(" ORDER BY c.rating DESC, c.views DESC")

	campsites := []CampsiteListItem{}
	if err := db.Raw(query.String(), params...).Scan(&campsites).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch campsites!", nil)
	}

	return middleware.JsonListResponse(c, fiber.StatusOK, true, "Campsites fetched!", campsites, len(campsites))
}

// GetCampsite returns one active campsite with its images and latest reviews.
// The view counter is bumped before the fetch and deliberately not rolled back
// when the fetch comes up empty; the two statements share no transaction.
func GetCampsite(c *fiber.Ctx) error {
	id := c.Params("id")
	db := database.Database.Db

	db.Model(&models.Campsite{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))

	var detail CampsiteDetail
	result := db.Raw(`
		SELECT
			c.*,
			cat.name AS category_name,
			cat.description AS category_description,
			h.name AS host_name,
			h.email AS host_email,
			h.phone AS host_phone,
			h.description AS host_description,
			h.profile_image AS host_profile_image
		FROM campsites c
		LEFT JOIN categories cat ON c.category_id = cat.id
		LEFT JOIN hosts h ON c.host_id = h.id
		WHERE c.id = ? AND c.status = 'active'`, id).Scan(&detail)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch campsite!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Campsite not found!", nil)
	}

	detail.Images = []models.CampsiteImage{}
	if err := db.Where("campsite_id = ?", id).Order("display_order").
		Find(&detail.Images).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch campsite images!", nil)
	}

	detail.Reviews = []models.Review{}
	if err := db.Where("campsite_id = ?", id).Order("created_at DESC").Limit(10).
		Find(&detail.Reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Campsite fetched!", detail)
}

// GetMapCampsites returns every active campsite for the map overlay,
// unfiltered and unpaginated
func GetMapCampsites(c *fiber.Ctx) error {
	db := database.Database.Db

	campsites := []MapCampsite{}
	if err := db.Raw(`
		SELECT
			c.id,
			c.name,
			c.latitude,
			c.longitude,
			c.price_per_night,
			c.rating,
			c.category_id,
			cat.name AS category_name,
			` + primaryImageSubquery + `
		FROM campsites c
		LEFT JOIN categories cat ON c.category_id = cat.id
		WHERE c.status = 'active'`).Scan(&campsites).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch map data!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Map data fetched!", campsites)
}

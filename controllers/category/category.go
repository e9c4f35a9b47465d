package categoryController

import (
	"wildcamp/database"
	"wildcamp/middleware"

	"github.com/gofiber/fiber/v2"
)

// CategoryWithCount is a category with a live count of its active campsites
type CategoryWithCount struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	CampsiteCount int    `json:"campsite_count"`
}

// ListCategories returns every category; ones without active campsites report
// a count of zero
func ListCategories(c *fiber.Ctx) error {
	db := database.Database.Db

	categories := []CategoryWithCount{}
	if err := db.Raw(`
		SELECT
			cat.id,
			cat.name,
			cat.description,
			COUNT(c.id) AS campsite_count
		FROM categories cat
		LEFT JOIN campsites c ON cat.id = c.category_id AND c.status = 'active'
		GROUP BY cat.id, cat.name, cat.description
		ORDER BY cat.id`).Scan(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched!", categories)
}

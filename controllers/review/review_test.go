package reviewController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"wildcamp/database"
	"wildcamp/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/api/reviews", SubmitReview)
	return app, db
}

func postReview(t *testing.T, app *fiber.App, body fiber.Map) (int, apiResponse) {
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/reviews", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestSubmitReviewUpdatesAggregate(t *testing.T) {
	app, db := setupTest(t)

	campsite := models.Campsite{Name: "Sasudo Island", PricePerNight: 120000}
	require.NoError(t, db.Create(&campsite).Error)

	status, resp := postReview(t, app, fiber.Map{
		"campsite_id":        campsite.ID,
		"user_name":          "Choi Hana",
		"rating":             5,
		"comment":            "Completely alone out there. Perfect.",
		"cleanliness_rating": 4,
		"location_rating":    5,
		"safety_rating":      4,
	})
	require.Equal(t, 200, status)
	assert.True(t, resp.Success)

	var got models.Campsite
	require.NoError(t, db.First(&got, campsite.ID).Error)
	assert.Equal(t, 5.0, got.Rating)
	assert.Equal(t, 1, got.ReviewCount)

	status, _ = postReview(t, app, fiber.Map{
		"campsite_id": campsite.ID,
		"user_name":   "Jung Woo",
		"rating":      3,
		"comment":     "Boat was late.",
	})
	require.Equal(t, 200, status)

	require.NoError(t, db.First(&got, campsite.ID).Error)
	assert.Equal(t, 4.0, got.Rating)
	assert.Equal(t, 2, got.ReviewCount)
}

func TestSubmitReviewNoValidation(t *testing.T) {
	app, db := setupTest(t)

	campsite := models.Campsite{Name: "Grove", PricePerNight: 35000}
	require.NoError(t, db.Create(&campsite).Error)

	// Out-of-range rating and a booking id that belongs to nothing both go in
	status, resp := postReview(t, app, fiber.Map{
		"campsite_id": campsite.ID,
		"booking_id":  123456,
		"rating":      11,
	})
	require.Equal(t, 200, status)
	assert.True(t, resp.Success)

	var stored models.Review
	require.NoError(t, db.First(&stored, "campsite_id = ?", campsite.ID).Error)
	assert.Equal(t, 11, stored.Rating)
	require.NotNil(t, stored.BookingID)
	assert.EqualValues(t, 123456, *stored.BookingID)

	var got models.Campsite
	require.NoError(t, db.First(&got, campsite.ID).Error)
	assert.Equal(t, 11.0, got.Rating)
}

func TestSubmitReviewBadBody(t *testing.T) {
	app, _ := setupTest(t)

	req := httptest.NewRequest("POST", "/api/reviews", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 400, resp.StatusCode)
}

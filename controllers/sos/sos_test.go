package sosController

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

func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/api/sos", SubmitAlert)
	return app, db
}

func TestSubmitAlert(t *testing.T) {
	app, db := setupTest(t)

	body, err := json.Marshal(fiber.Map{
		"booking_id": 42,
		"user_name":  "Park Jiwoo",
		"user_phone": "010-1111-2222",
		"latitude":   37.6511,
		"longitude":  128.6782,
		"message":    "Twisted ankle on the descent, need pickup",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/sos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, 200, resp.StatusCode)

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			AlertID uint `json:"alert_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	require.NotZero(t, out.Data.AlertID)

	var stored models.SosAlert
	require.NoError(t, db.First(&stored, out.Data.AlertID).Error)
	assert.Equal(t, models.SosActive, stored.Status)
	assert.EqualValues(t, 42, stored.BookingID)
	assert.Equal(t, 37.6511, stored.Latitude)
}

// The alert is a write-only log: even a booking id that resolves to nothing
// is accepted
func TestSubmitAlertUnknownBooking(t *testing.T) {
	app, db := setupTest(t)

	body, _ := json.Marshal(fiber.Map{"booking_id": 999999, "user_name": "X"})
	req := httptest.NewRequest("POST", "/api/sos", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.SosAlert{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

package utils

import (
	"fmt"
	"log"
	"time"
	"wildcamp/database"
	"wildcamp/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[RATING-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RecomputeCampsiteRating overwrites the campsite's denormalized rating and
// review_count from the full review set. The same statement runs after every
// review insert; both writers converge to the same values.
func RecomputeCampsiteRating(db *gorm.DB, campsiteID uint) error {
	return db.Exec(`
		UPDATE campsites
		SET rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE campsite_id = ?), 0),
		    review_count = (SELECT COUNT(*) FROM reviews WHERE campsite_id = ?)
		WHERE id = ?`,
		campsiteID, campsiteID, campsiteID,
	).Error
}

// RecomputeAllRatings reconciles every campsite's aggregates. Idempotent;
// covers drift from out-of-band edits to the reviews table.
func RecomputeAllRatings(db *gorm.DB) error {
	var ids []uint
	if err := db.Model(&models.Campsite{}).Pluck("id", &ids).Error; err != nil {
		return err
	}
	for _, id := range ids {
		if err := RecomputeCampsiteRating(db, id); err != nil {
			return fmt.Errorf("campsite %d: %w", id, err)
		}
	}
	return nil
}

// StartRatingScheduler runs the nightly reconciliation pass
func StartRatingScheduler() *cron.Cron {
	c := cron.New()
	c.AddFunc("@daily", func() {
		logScheduler("Reconciling campsite ratings...")
		if err := RecomputeAllRatings(database.Database.Db); err != nil {
			logScheduler("Reconciliation failed: " + err.Error())
			return
		}
		logScheduler("Reconciliation completed.")
	})
	c.Start()
	logScheduler("Started (daily).")
	return c
}

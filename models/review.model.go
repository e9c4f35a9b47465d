package models

import "time"

// Review is immutable once created. Ratings are stored as submitted; the
// campsite aggregate is recomputed from the full review set after each insert.
type Review struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CampsiteID uint   `gorm:"not null;index" json:"campsite_id"`
	BookingID  *uint  `json:"booking_id"` // Optional link to the stay
	UserName   string `gorm:"default:''" json:"user_name"`
	Rating     int    `gorm:"not null" json:"rating"`
	Comment    string `gorm:"type:text;default:''" json:"comment"`

	CleanlinessRating int `gorm:"default:0" json:"cleanliness_rating"`
	LocationRating    int `gorm:"default:0" json:"location_rating"`
	SafetyRating      int `gorm:"default:0" json:"safety_rating"`

	CreatedAt time.Time `json:"created_at"`
}

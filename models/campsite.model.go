package models

import "time"

// DifficultyLevel classifies how hard a campsite is to reach
type DifficultyLevel string

const (
	DifficultyEasy    DifficultyLevel = "easy"
	DifficultyMedium  DifficultyLevel = "medium"
	DifficultyHard    DifficultyLevel = "hard"
	DifficultyExtreme DifficultyLevel = "extreme"
)

// CampsiteStatus defines the listing status; only active campsites are served
type CampsiteStatus string

const (
	CampsiteActive   CampsiteStatus = "active"
	CampsiteInactive CampsiteStatus = "inactive"
)

type Campsite struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CategoryID  uint            `gorm:"index" json:"category_id"`
	HostID      uint            `gorm:"index" json:"host_id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text;default:''" json:"description"`
	Address     string          `gorm:"default:''" json:"address"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Region      string          `gorm:"index;default:''" json:"region"`
	Difficulty  DifficultyLevel `gorm:"column:difficulty_level;type:varchar(20);default:'easy'" json:"difficulty_level"`

	PricePerNight float64  `gorm:"not null" json:"price_per_night"`
	PricePerHour  *float64 `json:"price_per_hour"`
	MaxCapacity   int      `gorm:"default:4" json:"max_capacity"`

	CarAccessible        bool `gorm:"default:false" json:"car_accessible"`
	WaterAvailable       bool `gorm:"default:false" json:"water_available"`
	ElectricityAvailable bool `gorm:"default:false" json:"electricity_available"`
	ToiletAvailable      bool `gorm:"default:false" json:"toilet_available"`
	PetAllowed           bool `gorm:"default:false" json:"pet_allowed"`
	FireAllowed          bool `gorm:"default:false" json:"fire_allowed"`
	SmokingAllowed       bool `gorm:"default:false" json:"smoking_allowed"`

	// Denormalized from reviews; overwritten on every review insert
	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount int     `gorm:"not null;default:0" json:"review_count"`

	Views  int            `gorm:"not null;default:0" json:"views"`
	Status CampsiteStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

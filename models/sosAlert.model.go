package models

import "time"

// SosAlertStatus defaults to active; no resolution path exists in scope
type SosAlertStatus string

const (
	SosActive   SosAlertStatus = "active"
	SosResolved SosAlertStatus = "resolved"
)

type SosAlert struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	BookingID uint           `gorm:"index" json:"booking_id"`
	UserName  string         `gorm:"default:''" json:"user_name"`
	UserPhone string         `gorm:"default:''" json:"user_phone"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Message   string         `gorm:"type:text;default:''" json:"message"`
	Status    SosAlertStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

package models

import "time"

// PaymentStatus is set to pending at creation and never transitioned here
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// BookingStatus is set to pending at creation and never transitioned here
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Reference  string `gorm:"column:booking_reference;index" json:"booking_reference"`
	CampsiteID uint   `gorm:"not null;index" json:"campsite_id"`

	UserName  string `gorm:"default:''" json:"user_name"`
	UserEmail string `gorm:"default:''" json:"user_email"`
	UserPhone string `gorm:"default:''" json:"user_phone"`

	// Wire format YYYY-MM-DD, stored as text the way it arrives
	CheckInDate  string `gorm:"not null" json:"check_in_date"`
	CheckOutDate string `gorm:"not null" json:"check_out_date"`
	Guests       int    `gorm:"default:1" json:"guests"`

	// Frozen at creation: nights x price_per_night, never recomputed
	TotalPrice float64 `gorm:"not null" json:"total_price"`

	HasPet          bool   `gorm:"default:false" json:"has_pet"`
	SpecialRequests string `gorm:"type:text;default:''" json:"special_requests"`

	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"payment_status"`
	BookingStatus BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"booking_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

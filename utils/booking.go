package utils

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CalculateNights returns the ceiling of the day delta between check-in and
// check-out. An inverted range yields zero or a negative night count; callers
// store the resulting non-positive total price as-is.
func CalculateNights(checkInDate, checkOutDate string) (int, error) {
	checkIn, err := time.Parse(dateLayout, checkInDate)
	if err != nil {
		return 0, err
	}
	checkOut, err := time.Parse(dateLayout, checkOutDate)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24)), nil
}

// CalculateTotalPrice is nights x nightly rate; hourly rates are never applied
func CalculateTotalPrice(nights int, pricePerNight float64) float64 {
	return float64(nights) * pricePerNight
}

// NewBookingReference generates a short human-facing booking code
func NewBookingReference() string {
	return "WC-" + strings.ToUpper(uuid.NewString()[:8])
}

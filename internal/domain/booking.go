package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

// StatusConfirmed is the only state a booking can be in
const StatusConfirmed BookingStatus = "confirmed"

// Booking represents a confirmed reservation of one slot by one customer
type Booking struct {
	ID           int64
	ExperienceID int64
	SlotID       int64

	// Denormalized data captured at booking time
	ExperienceTitle string
	SlotDate        string
	SlotTime        string

	UserName    string
	UserEmail   string
	PromoCode   *string
	TotalAmount decimal.Decimal
	Status      BookingStatus

	CreatedAt time.Time
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

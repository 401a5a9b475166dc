package domain

// Catalog validation constants
const (
	MinRating = 0.0
	MaxRating = 5.0

	MaxPercentageDiscount = 100
)

// Business messages returned to clients
const (
	BookingConfirmedMessage = "Booking confirmed successfully!"
)

// Time format
const (
	TimestampFormat = "2006-01-02T15:04:05.000Z07:00" // ISO-8601 with milliseconds
)

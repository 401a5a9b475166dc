package models

import (
	"github.com/m04kA/bookit-service/internal/domain"
)

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID              int64   `json:"id"`
	ExperienceID    int64   `json:"experienceId"`
	ExperienceTitle string  `json:"experienceTitle"`
	SlotID          int64   `json:"slotId"`
	SlotDate        string  `json:"slotDate"`
	SlotTime        string  `json:"slotTime"`
	UserName        string  `json:"userName"`
	UserEmail       string  `json:"userEmail"`
	PromoCode       *string `json:"promoCode"`
	TotalAmount     float64 `json:"totalAmount"`
	BookingDate     string  `json:"bookingDate"`
	Status          string  `json:"status"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID,
		ExperienceID:    b.ExperienceID,
		ExperienceTitle: b.ExperienceTitle,
		SlotID:          b.SlotID,
		SlotDate:        b.SlotDate,
		SlotTime:        b.SlotTime,
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
		PromoCode:       b.PromoCode,
		TotalAmount:     b.TotalAmount.InexactFloat64(),
		BookingDate:     b.CreatedAt.UTC().Format(domain.TimestampFormat),
		Status:          string(b.Status),
	}
}

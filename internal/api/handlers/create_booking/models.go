package create_booking

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/bookit-service/internal/domain"
	createBooking "github.com/m04kA/bookit-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ExperienceID int64           `json:"experienceId"`
	SlotID       int64           `json:"slotId"`
	UserName     string          `json:"userName"`
	UserEmail    string          `json:"userEmail"`
	PromoCode    *string         `json:"promoCode,omitempty"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		ExperienceID: r.ExperienceID,
		SlotID:       r.SlotID,
		UserName:     r.UserName,
		UserEmail:    r.UserEmail,
		PromoCode:    r.PromoCode,
		TotalAmount:  r.TotalAmount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ExperienceID:    resp.ExperienceID,
		ExperienceTitle: resp.ExperienceTitle,
		SlotID:          resp.SlotID,
		SlotDate:        resp.SlotDate,
		SlotTime:        resp.SlotTime,
		UserName:        resp.UserName,
		UserEmail:       resp.UserEmail,
		PromoCode:       resp.PromoCode,
		TotalAmount:     resp.TotalAmount.InexactFloat64(),
		BookingDate:     resp.CreatedAt.UTC().Format(domain.TimestampFormat),
		Status:          resp.Status,
	}
}

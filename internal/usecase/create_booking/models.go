package create_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на создание бронирования
type Request struct {
	ExperienceID int64           `json:"experienceId" validate:"required"`
	SlotID       int64           `json:"slotId" validate:"required"`
	UserName     string          `json:"userName" validate:"required"`
	UserEmail    string          `json:"userEmail" validate:"required,email"`
	PromoCode    *string         `json:"promoCode"`   // сохраняется как есть, без повторной проверки
	TotalAmount  decimal.Decimal `json:"totalAmount"` // сумма, посчитанная клиентом
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64 // ID созданного бронирования
	ExperienceID int64
	SlotID       int64

	// Денормализованные данные
	ExperienceTitle string
	SlotDate        string
	SlotTime        string

	UserName    string
	UserEmail   string
	PromoCode   *string
	TotalAmount decimal.Decimal
	Status      string

	CreatedAt time.Time // Время создания
}

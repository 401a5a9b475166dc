package bookitclient

import "encoding/json"

// envelope общий конверт ответов API
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Field   string          `json:"field"`
}

// Experience впечатление каталога
type Experience struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       int64   `json:"price"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
}

// Slot слот впечатления
type Slot struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Available int    `json:"available"`
	Booked    int    `json:"booked"`
}

// PromoRequest запрос проверки промокода
type PromoRequest struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

// PromoResult результат проверки промокода
type PromoResult struct {
	Discount      float64 `json:"discount"`
	FinalAmount   float64 `json:"finalAmount"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
}

// BookingRequest запрос на создание бронирования
type BookingRequest struct {
	ExperienceID int64   `json:"experienceId"`
	SlotID       int64   `json:"slotId"`
	UserName     string  `json:"userName"`
	UserEmail    string  `json:"userEmail"`
	PromoCode    *string `json:"promoCode,omitempty"`
	TotalAmount  float64 `json:"totalAmount"`
}

// Booking бронирование
type Booking struct {
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

// Health ответ проверки живости
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

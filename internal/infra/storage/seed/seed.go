// Package seed содержит справочный каталог сервиса: впечатления, слоты и промокоды.
// Используется in-memory хранилищем и миграциями PostgreSQL.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/bookit-service/internal/domain"
)

// Catalog справочные данные каталога
type Catalog struct {
	Experiences []*domain.Experience
	Slots       []*domain.Slot
	PromoCodes  []*domain.PromoCode
}

type experienceRow struct {
	title, description, image string
	price                     int64
	duration, location        string
	rating                    float64
	reviews                   int
}

type slotRow struct {
	date, time        string
	available, booked int
}

type promoRow struct {
	code  string
	typ   domain.DiscountType
	value int64
}

var experiences = []experienceRow{
	{
		title:       "Scuba Diving in Goa",
		description: "Explore the underwater world of Goa with professional instructors",
		image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800",
		price:       3500,
		duration:    "3 hours",
		location:    "Goa, India",
		rating:      4.8,
		reviews:     245,
	},
	{
		title:       "Paragliding in Manali",
		description: "Soar through the skies and enjoy breathtaking mountain views",
		image:       "https://images.unsplash.com/photo-1564769625392-651b6e5b8b33?w=800",
		price:       2500,
		duration:    "30 minutes",
		location:    "Manali, Himachal Pradesh",
		rating:      4.9,
		reviews:     189,
	},
	{
		title:       "Desert Safari in Jaisalmer",
		description: "Experience the Thar Desert with camel rides and cultural shows",
		image:       "https://images.unsplash.com/photo-1609137144813-7d9921338f24?w=800",
		price:       4000,
		duration:    "Full day",
		location:    "Jaisalmer, Rajasthan",
		rating:      4.7,
		reviews:     321,
	},
}

// слоты по порядку впечатлений, идентификаторы слотов сквозные
var slots = [][]slotRow{
	{
		{date: "2025-11-05", time: "09:00 AM", available: 5, booked: 3},
		{date: "2025-11-05", time: "02:00 PM", available: 5, booked: 5},
		{date: "2025-11-06", time: "09:00 AM", available: 5, booked: 1},
		{date: "2025-11-06", time: "02:00 PM", available: 5, booked: 0},
	},
	{
		{date: "2025-11-05", time: "10:00 AM", available: 3, booked: 2},
		{date: "2025-11-05", time: "03:00 PM", available: 3, booked: 0},
		{date: "2025-11-07", time: "10:00 AM", available: 3, booked: 3},
	},
	{
		{date: "2025-11-08", time: "06:00 AM", available: 10, booked: 4},
		{date: "2025-11-08", time: "04:00 PM", available: 10, booked: 7},
		{date: "2025-11-09", time: "06:00 AM", available: 10, booked: 2},
	},
}

var promoCodes = []promoRow{
	{code: "FIRST50", typ: domain.DiscountPercentage, value: 50},
	{code: "SAVE500", typ: domain.DiscountFixed, value: 500},
	{code: "WELCOME20", typ: domain.DiscountPercentage, value: 20},
}

// Default собирает справочный каталог, проверяя инварианты каждой записи
func Default() (*Catalog, error) {
	catalog := &Catalog{}

	var slotID int64
	for i, row := range experiences {
		experienceID := int64(i + 1)

		exp, err := domain.NewExperience(experienceID, row.title, row.description, row.image,
			row.price, row.duration, row.location, row.rating, row.reviews)
		if err != nil {
			return nil, fmt.Errorf("seed experience %q: %w", row.title, err)
		}
		catalog.Experiences = append(catalog.Experiences, exp)

		for _, s := range slots[i] {
			slotID++
			slot, err := domain.NewSlot(slotID, experienceID, s.date, s.time, s.available, s.booked)
			if err != nil {
				return nil, fmt.Errorf("seed slot %d: %w", slotID, err)
			}
			catalog.Slots = append(catalog.Slots, slot)
		}
	}

	for _, row := range promoCodes {
		promo, err := domain.NewPromoCode(row.code, row.typ, decimal.NewFromInt(row.value))
		if err != nil {
			return nil, fmt.Errorf("seed promo %q: %w", row.code, err)
		}
		catalog.PromoCodes = append(catalog.PromoCodes, promo)
	}

	return catalog, nil
}

// MustDefault как Default, но паникует при ошибке
func MustDefault() *Catalog {
	catalog, err := Default()
	if err != nil {
		panic(err)
	}
	return catalog
}

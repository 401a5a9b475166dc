package domain

import "errors"

var (
	// ErrInvalidExperience возвращается, когда данные впечатления нарушают инварианты
	ErrInvalidExperience = errors.New("domain: invalid experience")

	// ErrInvalidSlot возвращается, когда данные слота нарушают инварианты
	ErrInvalidSlot = errors.New("domain: invalid slot")

	// ErrInvalidPromoCode возвращается, когда данные промокода нарушают инварианты
	ErrInvalidPromoCode = errors.New("domain: invalid promo code")

	// ErrSlotFullyBooked возвращается при попытке занять место в заполненном слоте
	ErrSlotFullyBooked = errors.New("domain: slot is fully booked")
)

package validate_promo

import "errors"

var (
	// ErrInvalidInput возвращается, когда не указан код или сумма
	ErrInvalidInput = errors.New("validate_promo: invalid input data")

	// ErrPromoNotFound возвращается для неизвестного промокода
	ErrPromoNotFound = errors.New("validate_promo: promo code not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("validate_promo: internal error")
)

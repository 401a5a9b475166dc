package create_booking

import (
	"fmt"

	"github.com/m04kA/bookit-service/pkg/validation"
)

// validateRequest проверяет обязательные поля и формат email.
// Ошибка содержит *validation.FieldError с именем поля.
func validateRequest(req *Request) error {
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// normalizePromoCode превращает пустой промокод в его отсутствие
func normalizePromoCode(code *string) *string {
	if code == nil || *code == "" {
		return nil
	}
	value := *code
	return &value
}

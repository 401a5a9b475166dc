package validate_promo

import (
	"fmt"

	"github.com/m04kA/bookit-service/pkg/validation"
)

// validateRequest проверяет обязательные поля, ошибка содержит *validation.FieldError
func validateRequest(req *Request) error {
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError ошибка валидации конкретного поля запроса
type FieldError struct {
	Field string // имя поля как в JSON
	Tag   string // нарушенное правило (required, email, gt, ...)
}

func (e *FieldError) Error() string {
	if e.Tag == "required" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s failed %q validation", e.Field, e.Tag)
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Имена полей берём из json тегов, чтобы клиент видел "experienceId", а не "ExperienceID"
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})

		// decimal.Decimal валидируется как число
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return decimalToFloat(d)
			}
			return nil
		}, decimal.Decimal{})

		validate = v
	})
	return validate
}

// decimalToFloat переводит decimal в float64, сохраняя знак значений,
// которые по модулю меньше минимального float64
func decimalToFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	if f == 0 && !d.IsZero() {
		return math.Copysign(math.SmallestNonzeroFloat64, float64(d.Sign()))
	}
	return f
}

// Struct валидирует структуру по тегам validate.
// Возвращает *FieldError для первого невалидного поля.
func Struct(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return &FieldError{Field: first.Field(), Tag: first.Tag()}
	}

	return err
}

// AsFieldError извлекает *FieldError из цепочки ошибок
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}

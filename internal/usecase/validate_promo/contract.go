package validate_promo

import (
	"context"

	"github.com/m04kA/bookit-service/internal/domain"
)

// PromoRepository интерфейс репозитория промокодов
type PromoRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

// Metrics счетчик результатов проверки промокодов
type Metrics interface {
	IncPromoValidation(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

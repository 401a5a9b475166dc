package catalog

import (
	"context"

	"github.com/m04kA/bookit-service/internal/domain"
)

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	List(ctx context.Context) ([]*domain.Experience, error)
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByExperience(ctx context.Context, experienceID int64) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

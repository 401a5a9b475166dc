package list_slots

import (
	"context"

	"github.com/m04kA/bookit-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListSlots(ctx context.Context, experienceID int64) ([]*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

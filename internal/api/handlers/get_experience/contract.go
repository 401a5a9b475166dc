package get_experience

import (
	"context"

	"github.com/m04kA/bookit-service/internal/service/catalog/models"
)

type CatalogService interface {
	GetExperience(ctx context.Context, id int64) (*models.ExperienceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

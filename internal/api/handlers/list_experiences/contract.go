package list_experiences

import (
	"context"

	"github.com/m04kA/bookit-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListExperiences(ctx context.Context) ([]*models.ExperienceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_experience

import (
	"errors"
	"net/http"

	"github.com/m04kA/bookit-service/internal/api/handlers"
	"github.com/m04kA/bookit-service/internal/service/catalog"
)

const (
	msgInvalidExperienceID = "Invalid experience id"
	msgNotFound            = "Experience not found"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/experiences/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /experiences/{id} - Invalid experience ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExperienceID)
		return
	}

	experience, err := h.service.GetExperience(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrExperienceNotFound):
			h.logger.Warn("GET /experiences/{id} - Experience not found: experience_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /experiences/{id} - Failed to get experience: experience_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /experiences/{id} - Experience retrieved: experience_id=%d", id)
	handlers.RespondSuccess(w, experience)
}

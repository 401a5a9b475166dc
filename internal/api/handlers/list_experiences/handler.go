package list_experiences

import (
	"net/http"

	"github.com/m04kA/bookit-service/internal/api/handlers"
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

// Handle GET /api/experiences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.service.ListExperiences(r.Context())
	if err != nil {
		h.logger.Error("GET /experiences - Failed to list experiences: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /experiences - Experiences listed: count=%d", len(experiences))
	handlers.RespondSuccess(w, experiences)
}

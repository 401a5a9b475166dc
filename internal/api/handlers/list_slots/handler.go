package list_slots

import (
	"net/http"

	"github.com/m04kA/bookit-service/internal/api/handlers"
)

const msgInvalidExperienceID = "Invalid experience id"

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

// Handle GET /api/experiences/{id}/slots
// Для впечатления без слотов отвечает пустым списком
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	experienceID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /experiences/{id}/slots - Invalid experience ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExperienceID)
		return
	}

	slots, err := h.service.ListSlots(r.Context(), experienceID)
	if err != nil {
		h.logger.Error("GET /experiences/{id}/slots - Failed to list slots: experience_id=%d, error=%v", experienceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /experiences/{id}/slots - Slots listed: experience_id=%d, count=%d", experienceID, len(slots))
	handlers.RespondSuccess(w, slots)
}

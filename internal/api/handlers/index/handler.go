package index

import (
	"net/http"

	"github.com/m04kA/bookit-service/internal/api/handlers"
)

// Response описание сервиса и его эндпоинтов
type Response struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

type Handler struct {
	version string
}

func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Message: "BookIt API Server",
		Version: h.version,
		Endpoints: map[string]string{
			"experiences":     "/api/experiences",
			"slots":           "/api/experiences/:id/slots",
			"promoValidation": "/api/promo/validate",
			"bookings":        "/api/bookings",
			"health":          "/health",
		},
	})
}

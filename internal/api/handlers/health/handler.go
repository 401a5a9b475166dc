package health

import (
	"net/http"

	"github.com/m04kA/bookit-service/internal/api/handlers"
)

// Response тело ответа проверки живости
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:  "OK",
		Message: "BookIt API is running",
	})
}

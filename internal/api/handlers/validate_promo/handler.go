package validate_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/bookit-service/internal/api/handlers"
	validatePromo "github.com/m04kA/bookit-service/internal/usecase/validate_promo"
	"github.com/m04kA/bookit-service/pkg/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Code and amount required"
	msgInvalidPromoCode   = "Invalid promo code"
)

type Handler struct {
	useCase ValidatePromoUseCase
	logger  Logger
}

func NewHandler(useCase ValidatePromoUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/promo/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, validatePromo.ErrInvalidInput):
			h.logger.Warn("POST /promo/validate - Invalid input: %v", err)
			if fieldErr, ok := validation.AsFieldError(err); ok {
				handlers.RespondFieldError(w, msgMissingFields, fieldErr.Field)
				return
			}
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, validatePromo.ErrPromoNotFound):
			h.logger.Warn("POST /promo/validate - Unknown promo code: code=%s", req.Code)
			handlers.RespondNotFound(w, msgInvalidPromoCode)

		default:
			h.logger.Error("POST /promo/validate - Failed to validate promo: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /promo/validate - Promo applied: code=%s", req.Code)
	handlers.RespondSuccess(w, FromUseCaseResponse(result))
}

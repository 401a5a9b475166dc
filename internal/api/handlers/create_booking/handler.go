package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/bookit-service/internal/api/handlers"
	"github.com/m04kA/bookit-service/internal/domain"
	createBooking "github.com/m04kA/bookit-service/internal/usecase/create_booking"
	"github.com/m04kA/bookit-service/pkg/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgNotFound           = "Experience or slot not found"
	msgSlotFullyBooked    = "Slot is fully booked"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			if fieldErr, ok := validation.AsFieldError(err); ok {
				handlers.RespondFieldError(w, fieldErr.Error(), fieldErr.Field)
				return
			}
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrExperienceNotFound), errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Not found: experience_id=%d, slot_id=%d", req.ExperienceID, req.SlotID)
			handlers.RespondNotFound(w, msgNotFound)

		// Заполненный слот отдаём как 400 для совместимости с существующими клиентами
		case errors.Is(err, createBooking.ErrSlotFullyBooked):
			h.logger.Warn("POST /bookings - Slot fully booked: experience_id=%d, slot_id=%d", req.ExperienceID, req.SlotID)
			handlers.RespondBadRequest(w, msgSlotFullyBooked)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: experience_id=%d, slot_id=%d, error=%v",
				req.ExperienceID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, experience_id=%d, slot_id=%d",
		result.ID, result.ExperienceID, result.SlotID)
	handlers.RespondSuccessWithMessage(w, FromUseCaseResponse(result), domain.BookingConfirmedMessage)
}

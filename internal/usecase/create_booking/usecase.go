package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/bookit-service/internal/domain"
	bookingRepo "github.com/m04kA/bookit-service/internal/infra/storage/booking"
	experienceRepo "github.com/m04kA/bookit-service/internal/infra/storage/experience"
	slotRepo "github.com/m04kA/bookit-service/internal/infra/storage/slot"
)

// UseCase use case для создания бронирования
type UseCase struct {
	experienceRepo ExperienceRepository
	slotRepo       SlotRepository
	bookingRepo    BookingRepository
	txManager      TransactionManager
	metrics        Metrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	experienceRepo ExperienceRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		experienceRepo: experienceRepo,
		slotRepo:       slotRepo,
		bookingRepo:    bookingRepo,
		txManager:      txManager,
		metrics:        metrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости, увеличение booked и запись бронирования выполняются в одной транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: experience=%d, slot=%d, email=%s", req.ExperienceID, req.SlotID, req.UserEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Все операции с хранилищем в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем впечатление
		experience, err := uc.experienceRepo.GetByID(txCtx, req.ExperienceID)
		if err != nil {
			if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
				uc.logger.Warn("CreateBooking: experience id=%d not found", req.ExperienceID)
				return ErrExperienceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get experience id=%d: %v", req.ExperienceID, err)
			return fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
		}

		// 2.2. Получаем слот с блокировкой (FOR UPDATE)
		slot, err := uc.slotRepo.GetForUpdate(txCtx, req.ExperienceID, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found for experience id=%d", req.SlotID, req.ExperienceID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2.3. Проверяем вместимость
		if slot.IsFull() {
			uc.logger.Warn("CreateBooking: slot id=%d is fully booked, %d/%d", slot.ID, slot.Booked, slot.Available)
			return ErrSlotFullyBooked
		}

		// 2.4. Занимаем место, условие booked < available проверяется повторно в хранилище
		if err := uc.slotRepo.IncrementBooked(txCtx, slot.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotFullyBooked) {
				uc.logger.Warn("CreateBooking: slot id=%d filled up concurrently", slot.ID)
				return ErrSlotFullyBooked
			}
			uc.logger.Error("CreateBooking: failed to reserve slot id=%d: %v", slot.ID, err)
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		// 2.5. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			ExperienceID:    experience.ID,
			SlotID:          slot.ID,
			ExperienceTitle: experience.Title,
			SlotDate:        slot.Date,
			SlotTime:        slot.Time,
			UserName:        req.UserName,
			UserEmail:       req.UserEmail,
			PromoCode:       normalizePromoCode(req.PromoCode),
			TotalAmount:     req.TotalAmount,
			Status:          domain.StatusConfirmed,
			CreatedAt:       uc.timeProvider.Now(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrInvalidReference) {
				uc.logger.Warn("CreateBooking: experience id=%d disappeared during booking", req.ExperienceID)
				return ErrExperienceNotFound
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if isKnownError(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingsCreated(result.ExperienceID)
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		ExperienceID:    result.ExperienceID,
		SlotID:          result.SlotID,
		ExperienceTitle: result.ExperienceTitle,
		SlotDate:        result.SlotDate,
		SlotTime:        result.SlotTime,
		UserName:        result.UserName,
		UserEmail:       result.UserEmail,
		PromoCode:       result.PromoCode,
		TotalAmount:     result.TotalAmount,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
	}, nil
}

// isKnownError проверяет, что ошибка уже классифицирована use case
func isKnownError(err error) bool {
	return errors.Is(err, ErrExperienceNotFound) ||
		errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrSlotFullyBooked) ||
		errors.Is(err, ErrInternal)
}

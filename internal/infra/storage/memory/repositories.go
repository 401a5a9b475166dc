package memory

import (
	"context"
	"time"

	"github.com/m04kA/bookit-service/internal/domain"
	"github.com/m04kA/bookit-service/internal/infra/storage/booking"
	"github.com/m04kA/bookit-service/internal/infra/storage/experience"
	"github.com/m04kA/bookit-service/internal/infra/storage/promo"
	"github.com/m04kA/bookit-service/internal/infra/storage/slot"
)

// ExperienceRepository репозиторий впечатлений в памяти
type ExperienceRepository struct {
	store *Store
}

// List возвращает все впечатления в порядке добавления
func (r *ExperienceRepository) List(_ context.Context) ([]*domain.Experience, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Experience, 0, len(r.store.experiences))
	for _, e := range r.store.experiences {
		cp := *e
		result = append(result, &cp)
	}

	return result, nil
}

// GetByID возвращает впечатление по ID
func (r *ExperienceRepository) GetByID(_ context.Context, id int64) (*domain.Experience, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e := r.store.findExperience(id)
	if e == nil {
		return nil, experience.ErrExperienceNotFound
	}

	cp := *e
	return &cp, nil
}

// SlotRepository репозиторий слотов в памяти
type SlotRepository struct {
	store *Store
}

// ListByExperience возвращает слоты впечатления, пустой слайс если их нет
func (r *SlotRepository) ListByExperience(_ context.Context, experienceID int64) ([]*domain.Slot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Slot, 0)
	for _, s := range r.store.slots {
		if s.ExperienceID == experienceID {
			cp := *s
			result = append(result, &cp)
		}
	}

	return result, nil
}

// GetForUpdate возвращает слот впечатления.
// Блокировку строки заменяет TxManager: транзакции выполняются по одной.
func (r *SlotRepository) GetForUpdate(_ context.Context, experienceID, slotID int64) (*domain.Slot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s := r.store.findSlot(slotID)
	if s == nil || s.ExperienceID != experienceID {
		return nil, slot.ErrSlotNotFound
	}

	cp := *s
	return &cp, nil
}

// IncrementBooked занимает одно место, если слот не заполнен
func (r *SlotRepository) IncrementBooked(ctx context.Context, slotID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s := r.store.findSlot(slotID)
	if s == nil {
		return slot.ErrSlotNotFound
	}

	if err := s.Reserve(); err != nil {
		return slot.ErrSlotFullyBooked
	}

	onRollback(ctx, func() { s.Booked-- })

	return nil
}

// PromoRepository репозиторий промокодов в памяти
type PromoRepository struct {
	store *Store
}

// GetByCode возвращает промокод, сравнение регистрозависимое
func (r *PromoRepository) GetByCode(_ context.Context, code string) (*domain.PromoCode, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.promos[code]
	if !ok {
		return nil, promo.ErrPromoNotFound
	}

	cp := *p
	return &cp, nil
}

// BookingRepository репозиторий бронирований в памяти
type BookingRepository struct {
	store *Store
}

// Create сохраняет бронирование и присваивает ему новый ID
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	id, err := r.store.bookingIDs.NextID(ctx)
	if err != nil {
		return nil, err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.findExperience(b.ExperienceID) == nil {
		return nil, booking.ErrInvalidReference
	}

	stored := copyBooking(b)
	stored.ID = id
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.store.bookings[id] = stored

	onRollback(ctx, func() { delete(r.store.bookings, id) })

	return copyBooking(stored), nil
}

// GetByID возвращает бронирование по ID
func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}

	return copyBooking(b), nil
}

func copyBooking(b *domain.Booking) *domain.Booking {
	cp := *b
	if b.PromoCode != nil {
		code := *b.PromoCode
		cp.PromoCode = &code
	}
	return &cp
}

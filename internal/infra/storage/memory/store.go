// Package memory реализует хранилище сервиса в памяти процесса.
// Используется по умолчанию и в тестах, повторяет поведение PostgreSQL репозиториев
// и возвращает их sentinel ошибки.
package memory

import (
	"context"
	"sync"

	"github.com/m04kA/bookit-service/internal/domain"
	"github.com/m04kA/bookit-service/internal/idgen/sequence"
	"github.com/m04kA/bookit-service/internal/infra/storage/seed"
)

// Store in-memory хранилище каталога и бронирований
type Store struct {
	mu          sync.RWMutex
	experiences []*domain.Experience
	slots       []*domain.Slot
	promos      map[string]*domain.PromoCode
	bookings    map[int64]*domain.Booking
	bookingIDs  *sequence.Generator

	// txMu сериализует транзакции TxManager
	txMu sync.Mutex
}

// New создает хранилище, заполненное копией catalog
func New(catalog *seed.Catalog) *Store {
	s := &Store{
		experiences: make([]*domain.Experience, 0, len(catalog.Experiences)),
		slots:       make([]*domain.Slot, 0, len(catalog.Slots)),
		promos:      make(map[string]*domain.PromoCode, len(catalog.PromoCodes)),
		bookings:    make(map[int64]*domain.Booking),
		bookingIDs:  sequence.New(0),
	}

	for _, e := range catalog.Experiences {
		cp := *e
		s.experiences = append(s.experiences, &cp)
	}
	for _, sl := range catalog.Slots {
		cp := *sl
		s.slots = append(s.slots, &cp)
	}
	for _, p := range catalog.PromoCodes {
		cp := *p
		s.promos[p.Code] = &cp
	}

	return s
}

// Experiences возвращает репозиторий впечатлений
func (s *Store) Experiences() *ExperienceRepository {
	return &ExperienceRepository{store: s}
}

// Slots возвращает репозиторий слотов
func (s *Store) Slots() *SlotRepository {
	return &SlotRepository{store: s}
}

// Promos возвращает репозиторий промокодов
func (s *Store) Promos() *PromoRepository {
	return &PromoRepository{store: s}
}

// Bookings возвращает репозиторий бронирований
func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

// TxManager возвращает менеджер транзакций хранилища
func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

func (s *Store) findExperience(id int64) *domain.Experience {
	for _, e := range s.experiences {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) findSlot(id int64) *domain.Slot {
	for _, sl := range s.slots {
		if sl.ID == id {
			return sl
		}
	}
	return nil
}

// onRollback регистрирует компенсирующее действие текущей транзакции.
// Вне транзакции изменение сразу окончательное.
func onRollback(ctx context.Context, undo func()) {
	if tx, ok := txFromContext(ctx); ok {
		tx.undo = append(tx.undo, undo)
	}
}

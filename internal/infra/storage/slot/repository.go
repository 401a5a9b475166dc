package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/bookit-service/internal/domain"
	"github.com/m04kA/bookit-service/pkg/dbmetrics"
	"github.com/m04kA/bookit-service/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"experience_id",
	"slot_date",
	"slot_time",
	"available",
	"booked",
}

// Repository репозиторий слотов впечатлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByExperience возвращает слоты впечатления в порядке добавления.
// Для впечатления без слотов (или несуществующего) возвращает пустой слайс.
func (r *Repository) ListByExperience(ctx context.Context, experienceID int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{"experience_id": experienceID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByExperience - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByExperience - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var s domain.Slot
		if err := rows.Scan(&s.ID, &s.ExperienceID, &s.Date, &s.Time, &s.Available, &s.Booked); err != nil {
			return nil, fmt.Errorf("%w: ListByExperience - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByExperience - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// GetForUpdate получает слот впечатления и блокирует строку до конца транзакции.
// Вне транзакции блокировка снимается сразу после запроса.
func (r *Repository) GetForUpdate(ctx context.Context, experienceID, slotID int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{"id": slotID, "experience_id": experienceID}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Slot
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.ExperienceID, &s.Date, &s.Time, &s.Available, &s.Booked)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan slot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// IncrementBooked занимает одно место в слоте.
// Условие booked < available проверяется в том же UPDATE, поэтому переполнить слот нельзя.
func (r *Repository) IncrementBooked(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("booked", squirrel.Expr("booked + 1")).
		Where(squirrel.Eq{"id": slotID}).
		Where("booked < available").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotFullyBooked
	}

	return nil
}

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/bookit-service/internal/domain"
	"github.com/m04kA/bookit-service/pkg/dbmetrics"
	"github.com/m04kA/bookit-service/pkg/psqlbuilder"
)

// pgForeignKeyViolation код ошибки PostgreSQL foreign_key_violation
const pgForeignKeyViolation = "23503"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование и проставляет ему ID из последовательности.
// Сумма и дата бронирования перечитываются из сохранённой строки.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"experience_id",
			"experience_title",
			"slot_id",
			"slot_date",
			"slot_time",
			"user_name",
			"user_email",
			"promo_code",
			"total_amount",
			"booking_date",
			"status",
		).
		Values(
			booking.ExperienceID,
			booking.ExperienceTitle,
			booking.SlotID,
			booking.SlotDate,
			booking.SlotTime,
			booking.UserName,
			booking.UserEmail,
			booking.PromoCode,
			booking.TotalAmount,
			booking.CreatedAt,
			booking.Status,
		).
		Suffix("RETURNING id, total_amount, booking_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &booking.TotalAmount, &booking.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			return nil, fmt.Errorf("%w: experience_id=%d", ErrInvalidReference, booking.ExperienceID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = booking.CreatedAt.UTC()

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"experience_id",
		"experience_title",
		"slot_id",
		"slot_date",
		"slot_time",
		"user_name",
		"user_email",
		"promo_code",
		"total_amount",
		"booking_date",
		"status",
	).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ExperienceID,
		&booking.ExperienceTitle,
		&booking.SlotID,
		&booking.SlotDate,
		&booking.SlotTime,
		&booking.UserName,
		&booking.UserEmail,
		&booking.PromoCode,
		&booking.TotalAmount,
		&booking.CreatedAt,
		&booking.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = booking.CreatedAt.UTC()

	return &booking, nil
}

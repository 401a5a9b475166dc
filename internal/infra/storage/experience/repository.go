package experience

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
	"title",
	"description",
	"image",
	"price",
	"duration",
	"location",
	"rating",
	"reviews",
}

// Repository репозиторий каталога впечатлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория впечатлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все впечатления в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("experiences").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	experiences := make([]*domain.Experience, 0)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		experiences = append(experiences, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return experiences, nil
}

// GetByID получает впечатление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("experiences").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	exp, err := scanExperience(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan experience: %v", ErrScanRow, err)
	}

	return exp, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanExperience(row scanner) (*domain.Experience, error) {
	var (
		exp         domain.Experience
		description sql.NullString
		image       sql.NullString
		duration    sql.NullString
		location    sql.NullString
		rating      sql.NullFloat64
		reviews     sql.NullInt64
	)

	err := row.Scan(
		&exp.ID,
		&exp.Title,
		&description,
		&image,
		&exp.Price,
		&duration,
		&location,
		&rating,
		&reviews,
	)
	if err != nil {
		return nil, err
	}

	exp.Description = description.String
	exp.Image = image.String
	exp.Duration = duration.String
	exp.Location = location.String
	exp.Rating = rating.Float64
	exp.Reviews = int(reviews.Int64)

	return &exp, nil
}

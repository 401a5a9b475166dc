package promo

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

// Repository репозиторий промокодов (справочные данные, только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает промокод по коду. Сравнение регистрозависимое.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("code", "discount_type", "discount_value").
		From("promo_codes").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.PromoCode
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.Code, &p.Type, &p.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promo: %v", ErrScanRow, err)
	}

	return &p, nil
}

// Package migrations создает схему PostgreSQL и заполняет пустую базу справочным каталогом.
package migrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/bookit-service/internal/infra/storage/seed"
	"github.com/m04kA/bookit-service/pkg/dbmetrics"
	"github.com/m04kA/bookit-service/pkg/psqlbuilder"
)

var (
	// ErrCreateSchema возвращается при ошибке создания таблиц
	ErrCreateSchema = errors.New("migrations: failed to create schema")

	// ErrSeed возвращается при ошибке заполнения справочных данных
	ErrSeed = errors.New("migrations: failed to seed catalog")
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS experiences (
		id SERIAL PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		image VARCHAR(500),
		price INTEGER NOT NULL CHECK (price >= 0),
		duration VARCHAR(100),
		location VARCHAR(255),
		rating DECIMAL(2,1) CHECK (rating >= 0 AND rating <= 5),
		reviews INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS slots (
		id SERIAL PRIMARY KEY,
		experience_id INTEGER NOT NULL REFERENCES experiences(id),
		slot_date VARCHAR(50) NOT NULL,
		slot_time VARCHAR(50) NOT NULL,
		available INTEGER NOT NULL CHECK (available >= 0),
		booked INTEGER NOT NULL DEFAULT 0 CHECK (booked >= 0),
		CONSTRAINT slots_booked_le_available CHECK (booked <= available)
	)`,
	`CREATE TABLE IF NOT EXISTS promo_codes (
		code VARCHAR(50) PRIMARY KEY,
		discount_type VARCHAR(20) NOT NULL CHECK (discount_type IN ('percentage', 'fixed')),
		discount_value NUMERIC(12,2) NOT NULL CHECK (discount_value >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id SERIAL PRIMARY KEY,
		experience_id INTEGER NOT NULL REFERENCES experiences(id),
		experience_title VARCHAR(255) NOT NULL,
		slot_id INTEGER NOT NULL REFERENCES slots(id),
		slot_date VARCHAR(50) NOT NULL,
		slot_time VARCHAR(50) NOT NULL,
		user_name VARCHAR(255) NOT NULL,
		user_email VARCHAR(255) NOT NULL,
		promo_code VARCHAR(50),
		total_amount NUMERIC NOT NULL,
		booking_date TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status VARCHAR(50) NOT NULL DEFAULT 'confirmed'
	)`,
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Up создает таблицы и, если каталог пуст, заполняет его данными catalog.
// Проверка пустоты и заполнение выполняются в одной транзакции.
func Up(ctx context.Context, db dbmetrics.DBExecutor, txManager TransactionManager, catalog *seed.Catalog, log Logger) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrCreateSchema, err)
		}
	}

	var (
		count  int
		seeded bool
	)
	err := txManager.Do(ctx, func(ctx context.Context) error {
		executor := dbmetrics.GetExecutor(ctx, db)

		if err := executor.QueryRowContext(ctx, "SELECT COUNT(*) FROM experiences").Scan(&count); err != nil {
			return fmt.Errorf("%w: count experiences: %v", ErrSeed, err)
		}
		if count > 0 {
			return nil
		}

		if err := seedCatalog(ctx, executor, catalog); err != nil {
			return err
		}
		seeded = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSeed) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrSeed, err)
	}

	if !seeded {
		log.Info("Catalog already contains %d experiences, seeding skipped", count)
		return nil
	}

	log.Info("Catalog seeded: experiences=%d, slots=%d, promo codes=%d",
		len(catalog.Experiences), len(catalog.Slots), len(catalog.PromoCodes))
	return nil
}

func seedCatalog(ctx context.Context, db dbmetrics.DBExecutor, catalog *seed.Catalog) error {
	// ID в базе выдаёт SERIAL, поэтому слоты привязываем через соответствие seed ID -> ID в базе
	experienceIDs := make(map[int64]int64, len(catalog.Experiences))

	for _, exp := range catalog.Experiences {
		query, args, err := psqlbuilder.Insert("experiences").
			Columns("title", "description", "image", "price", "duration", "location", "rating", "reviews").
			Values(exp.Title, exp.Description, exp.Image, exp.Price, exp.Duration, exp.Location, exp.Rating, exp.Reviews).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: build experience insert: %v", ErrSeed, err)
		}

		var id int64
		if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return fmt.Errorf("%w: insert experience %q: %v", ErrSeed, exp.Title, err)
		}
		experienceIDs[exp.ID] = id
	}

	for _, s := range catalog.Slots {
		query, args, err := psqlbuilder.Insert("slots").
			Columns("experience_id", "slot_date", "slot_time", "available", "booked").
			Values(experienceIDs[s.ExperienceID], s.Date, s.Time, s.Available, s.Booked).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: build slot insert: %v", ErrSeed, err)
		}

		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insert slot %s %s: %v", ErrSeed, s.Date, s.Time, err)
		}
	}

	for _, p := range catalog.PromoCodes {
		query, args, err := psqlbuilder.Insert("promo_codes").
			Columns("code", "discount_type", "discount_value").
			Values(p.Code, p.Type, p.Value).
			Suffix("ON CONFLICT (code) DO NOTHING").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: build promo insert: %v", ErrSeed, err)
		}

		if _, err := db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: insert promo %q: %v", ErrSeed, p.Code, err)
		}
	}

	return nil
}

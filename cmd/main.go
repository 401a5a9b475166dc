package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/bookit-service/internal/api"
	createBookingHandler "github.com/m04kA/bookit-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/bookit-service/internal/api/handlers/get_booking"
	getExperienceHandler "github.com/m04kA/bookit-service/internal/api/handlers/get_experience"
	healthHandler "github.com/m04kA/bookit-service/internal/api/handlers/health"
	indexHandler "github.com/m04kA/bookit-service/internal/api/handlers/index"
	listExperiencesHandler "github.com/m04kA/bookit-service/internal/api/handlers/list_experiences"
	listSlotsHandler "github.com/m04kA/bookit-service/internal/api/handlers/list_slots"
	validatePromoHandler "github.com/m04kA/bookit-service/internal/api/handlers/validate_promo"
	"github.com/m04kA/bookit-service/internal/config"
	"github.com/m04kA/bookit-service/internal/domain"
	bookingRepo "github.com/m04kA/bookit-service/internal/infra/storage/booking"
	experienceRepo "github.com/m04kA/bookit-service/internal/infra/storage/experience"
	"github.com/m04kA/bookit-service/internal/infra/storage/memory"
	"github.com/m04kA/bookit-service/internal/infra/storage/migrations"
	promoRepo "github.com/m04kA/bookit-service/internal/infra/storage/promo"
	"github.com/m04kA/bookit-service/internal/infra/storage/seed"
	slotRepo "github.com/m04kA/bookit-service/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/bookit-service/internal/service/bookings"
	catalogService "github.com/m04kA/bookit-service/internal/service/catalog"
	createBookingUC "github.com/m04kA/bookit-service/internal/usecase/create_booking"
	validatePromoUC "github.com/m04kA/bookit-service/internal/usecase/validate_promo"
	"github.com/m04kA/bookit-service/pkg/dbmetrics"
	"github.com/m04kA/bookit-service/pkg/logger"
	"github.com/m04kA/bookit-service/pkg/metrics"
	"github.com/m04kA/bookit-service/pkg/txmanager"
)

// Интерфейсы, общие для in-memory и PostgreSQL репозиториев
type (
	experienceRepository interface {
		List(ctx context.Context) ([]*domain.Experience, error)
		GetByID(ctx context.Context, id int64) (*domain.Experience, error)
	}

	slotRepository interface {
		ListByExperience(ctx context.Context, experienceID int64) ([]*domain.Slot, error)
		GetForUpdate(ctx context.Context, experienceID, slotID int64) (*domain.Slot, error)
		IncrementBooked(ctx context.Context, slotID int64) error
	}

	promoRepository interface {
		GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	}

	bookingRepository interface {
		Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
		GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	}

	txManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
)

// storage репозитории выбранного хранилища
type storage struct {
	experiences experienceRepository
	slots       slotRepository
	promos      promoRepository
	bookings    bookingRepository
	txManager   txManager
	cleanup     func()
}

func main() {
	// Загружаем конфигурацию
	configPath := config.PathFromEnv()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting BookIt service %s (env=%s)...", cfg.App.Version, cfg.App.Env)
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище
	stopMetricsCh := make(chan struct{})

	var store *storage
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		store, err = newPostgresStorage(cfg, metricsCollector, stopMetricsCh, log)
		if err != nil {
			log.Fatal("Failed to initialize postgres storage: %v", err)
		}
	default:
		store = newMemoryStorage()
		log.Info("Using in-memory storage seeded with the reference catalog")
	}
	defer store.cleanup()

	// Счетчики use cases не должны зависеть от того, включены ли метрики
	useCaseMetrics := metricsCollector
	if useCaseMetrics == nil {
		useCaseMetrics = metrics.New(cfg.Metrics.ServiceName)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(store.experiences, store.slots, log)
	bookingSvc := bookingsService.NewService(store.bookings, log)

	// Инициализируем use cases
	validatePromoUseCase := validatePromoUC.NewUseCase(store.promos, useCaseMetrics, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		store.experiences,
		store.slots,
		store.bookings,
		store.txManager,
		useCaseMetrics,
		log,
	)

	// Настраиваем роутер
	router := api.NewRouter(api.Handlers{
		ListExperiences: listExperiencesHandler.NewHandler(catalogSvc, log),
		GetExperience:   getExperienceHandler.NewHandler(catalogSvc, log),
		ListSlots:       listSlotsHandler.NewHandler(catalogSvc, log),
		ValidatePromo:   validatePromoHandler.NewHandler(validatePromoUseCase, log),
		CreateBooking:   createBookingHandler.NewHandler(createBookingUseCase, log),
		GetBooking:      getBookingHandler.NewHandler(bookingSvc, log),
		Health:          healthHandler.NewHandler(),
		Index:           indexHandler.NewHandler(cfg.App.Version),
	}, api.Options{
		Metrics:        metricsCollector,
		MetricsPath:    cfg.Metrics.Path,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, log)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

func newMemoryStorage() *storage {
	store := memory.New(seed.MustDefault())

	return &storage{
		experiences: store.Experiences(),
		slots:       store.Slots(),
		promos:      store.Promos(),
		bookings:    store.Bookings(),
		txManager:   store.TxManager(),
		cleanup:     func() {},
	}
}

func newPostgresStorage(
	cfg *config.Config,
	metricsCollector *metrics.Metrics,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (*storage, error) {
	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s, sslmode=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName, cfg.Database.SSLMode)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)

	// Схема и справочные данные
	catalog := &seed.Catalog{}
	if cfg.Storage.Seed {
		catalog = seed.MustDefault()
	}
	txManager := txmanager.NewTransactionManager(wrappedDB)
	if err := migrations.Up(ctx, wrappedDB, txManager, catalog, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &storage{
		experiences: experienceRepo.NewRepository(wrappedDB),
		slots:       slotRepo.NewRepository(wrappedDB),
		promos:      promoRepo.NewRepository(wrappedDB),
		bookings:    bookingRepo.NewRepository(wrappedDB),
		txManager:   txManager,
		cleanup: func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close database: %v", err)
			}
		},
	}, nil
}

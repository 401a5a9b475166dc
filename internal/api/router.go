// Package api собирает HTTP маршруты сервиса.
package api

import (
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/m04kA/bookit-service/internal/api/handlers"
	"github.com/m04kA/bookit-service/internal/api/middleware"
	"github.com/m04kA/bookit-service/pkg/metrics"
)

const (
	msgRouteNotFound    = "Route not found"
	msgMethodNotAllowed = "Method not allowed"
)

// Handler обработчик одного эндпоинта
type Handler interface {
	Handle(w http.ResponseWriter, r *http.Request)
}

// Handlers обработчики всех эндпоинтов
type Handlers struct {
	ListExperiences Handler
	GetExperience   Handler
	ListSlots       Handler
	ValidatePromo   Handler
	CreateBooking   Handler
	GetBooking      Handler
	Health          Handler
	Index           Handler
}

// Options параметры роутера
type Options struct {
	// Metrics nil отключает метрики и эндпоинт MetricsPath
	Metrics        *metrics.Metrics
	MetricsPath    string
	AllowedOrigins []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewRouter регистрирует маршруты API и оборачивает их в middleware
func NewRouter(h Handlers, opts Options, log Logger) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Logging(log))
	r.Use(middleware.Recovery(log))

	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, opts.Metrics.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", opts.MetricsPath)
	}

	// Служебные маршруты
	r.HandleFunc("/", h.Index.Handle).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// --- Каталог ---
	api.HandleFunc("/experiences", h.ListExperiences.Handle).Methods(http.MethodGet)
	api.HandleFunc("/experiences/{id}", h.GetExperience.Handle).Methods(http.MethodGet)
	api.HandleFunc("/experiences/{id}/slots", h.ListSlots.Handle).Methods(http.MethodGet)

	// --- Промокоды ---
	api.HandleFunc("/promo/validate", h.ValidatePromo.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	api.HandleFunc("/bookings", h.CreateBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", h.GetBooking.Handle).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondNotFound(w, msgRouteNotFound)
	})

	// Подроутер сам сопоставляет метод, поэтому обработчик ставим на оба
	methodNotAllowed := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
	})
	r.MethodNotAllowedHandler = methodNotAllowed
	api.MethodNotAllowedHandler = methodNotAllowed

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(origins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.HeaderRequestID}),
		gorillaHandlers.ExposedHeaders([]string{middleware.HeaderRequestID}),
	)(r)
}

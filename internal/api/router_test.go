package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBookingHandler "github.com/m04kA/bookit-service/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/bookit-service/internal/api/handlers/get_booking"
	getExperienceHandler "github.com/m04kA/bookit-service/internal/api/handlers/get_experience"
	healthHandler "github.com/m04kA/bookit-service/internal/api/handlers/health"
	indexHandler "github.com/m04kA/bookit-service/internal/api/handlers/index"
	listExperiencesHandler "github.com/m04kA/bookit-service/internal/api/handlers/list_experiences"
	listSlotsHandler "github.com/m04kA/bookit-service/internal/api/handlers/list_slots"
	validatePromoHandler "github.com/m04kA/bookit-service/internal/api/handlers/validate_promo"
	"github.com/m04kA/bookit-service/internal/infra/storage/memory"
	"github.com/m04kA/bookit-service/internal/infra/storage/seed"
	bookingsService "github.com/m04kA/bookit-service/internal/service/bookings"
	catalogService "github.com/m04kA/bookit-service/internal/service/catalog"
	createBookingUC "github.com/m04kA/bookit-service/internal/usecase/create_booking"
	validatePromoUC "github.com/m04kA/bookit-service/internal/usecase/validate_promo"
	"github.com/m04kA/bookit-service/pkg/bookitclient"
	"github.com/m04kA/bookit-service/pkg/logger"
	"github.com/m04kA/bookit-service/pkg/metrics"
	"github.com/m04kA/bookit-service/pkg/ptr"
)

func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()

	log := logger.Nop()
	m := metrics.New("test")
	store := memory.New(seed.MustDefault())

	catalogSvc := catalogService.NewService(store.Experiences(), store.Slots(), log)
	bookingSvc := bookingsService.NewService(store.Bookings(), log)
	validatePromo := validatePromoUC.NewUseCase(store.Promos(), m, log)
	createBooking := createBookingUC.NewUseCase(store.Experiences(), store.Slots(), store.Bookings(), store.TxManager(), m, log)

	router := NewRouter(Handlers{
		ListExperiences: listExperiencesHandler.NewHandler(catalogSvc, log),
		GetExperience:   getExperienceHandler.NewHandler(catalogSvc, log),
		ListSlots:       listSlotsHandler.NewHandler(catalogSvc, log),
		ValidatePromo:   validatePromoHandler.NewHandler(validatePromo, log),
		CreateBooking:   createBookingHandler.NewHandler(createBooking, log),
		GetBooking:      getBookingHandler.NewHandler(bookingSvc, log),
		Health:          healthHandler.NewHandler(),
		Index:           indexHandler.NewHandler("1.0.0"),
	}, Options{
		Metrics:        m,
		MetricsPath:    "/metrics",
		AllowedOrigins: []string{"*"},
	}, log)

	return router, store
}

func newTestClient(t *testing.T) (*bookitclient.Client, *memory.Store) {
	t.Helper()
	router, store := newTestRouter(t)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return bookitclient.NewClientWithHTTP(srv.URL, srv.Client()), store
}

func TestAPI_Catalog(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	experiences, err := client.ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 3)
	assert.Equal(t, "Paragliding in Manali", experiences[1].Title)

	exp, err := client.GetExperience(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), exp.Price)

	_, err = client.GetExperience(ctx, 99)
	assert.ErrorIs(t, err, bookitclient.ErrNotFound)

	slots, err := client.ListSlots(ctx, 3)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, int64(8), slots[0].ID)

	empty, err := client.ListSlots(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAPI_ValidatePromo(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	result, err := client.ValidatePromo(ctx, bookitclient.PromoRequest{Code: "SAVE500", Amount: 300})
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.Discount)
	assert.Equal(t, 0.0, result.FinalAmount)
	assert.Equal(t, "fixed", result.DiscountType)
	assert.Equal(t, 500.0, result.DiscountValue)

	_, err = client.ValidatePromo(ctx, bookitclient.PromoRequest{Code: "NOPE", Amount: 300})
	assert.ErrorIs(t, err, bookitclient.ErrNotFound)

	_, err = client.ValidatePromo(ctx, bookitclient.PromoRequest{Code: "FIRST50"})
	require.ErrorIs(t, err, bookitclient.ErrBadRequest)
	var apiErr *bookitclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "amount", apiErr.Field)
}

func TestAPI_BookingFlow(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	booking, message, err := client.CreateBooking(ctx, bookitclient.BookingRequest{
		ExperienceID: 1,
		SlotID:       1,
		UserName:     "Jane Doe",
		UserEmail:    "jane@example.com",
		PromoCode:    ptr.Ptr("FIRST50"),
		TotalAmount:  1750,
	})
	require.NoError(t, err)
	assert.Equal(t, "Booking confirmed successfully!", message)
	assert.Equal(t, "Scuba Diving in Goa", booking.ExperienceTitle)
	assert.Equal(t, "2025-11-05", booking.SlotDate)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, 1750.0, booking.TotalAmount)
	assert.NotEmpty(t, booking.BookingDate)

	slots, err := client.ListSlots(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, slots[0].Booked)

	fetched, err := client.GetBooking(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking, fetched)

	_, err = client.GetBooking(ctx, booking.ID+100)
	assert.ErrorIs(t, err, bookitclient.ErrNotFound)
}

func TestAPI_BookingFailures(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	base := bookitclient.BookingRequest{ExperienceID: 1, SlotID: 2, UserName: "A", UserEmail: "a@example.com", TotalAmount: 3500}

	// Слот 2 заполнен, совместимость: 400
	_, _, err := client.CreateBooking(ctx, base)
	require.ErrorIs(t, err, bookitclient.ErrBadRequest)
	var apiErr *bookitclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Slot is fully booked", apiErr.Message)

	missing := base
	missing.SlotID = 1
	missing.UserEmail = ""
	_, _, err = client.CreateBooking(ctx, missing)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "userEmail", apiErr.Field)

	unknown := base
	unknown.ExperienceID = 2
	unknown.SlotID = 1
	_, _, err = client.CreateBooking(ctx, unknown)
	assert.ErrorIs(t, err, bookitclient.ErrNotFound)
}

func TestAPI_ConcurrentBookingsOfLastSeat(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	// Слот 9: 7 из 10, осталось 3 места
	const attempts = 12
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := client.CreateBooking(ctx, bookitclient.BookingRequest{
				ExperienceID: 3,
				SlotID:       9,
				UserName:     "Racer",
				UserEmail:    "racer@example.com",
				TotalAmount:  4000,
			})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, created)

	s, err := store.Slots().GetForUpdate(ctx, 3, 9)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Booked)
}

func TestRouter_RawStatusCodes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "malformed experience id", method: http.MethodGet, path: "/api/experiences/abc", want: http.StatusBadRequest},
		{name: "malformed slots id", method: http.MethodGet, path: "/api/experiences/abc/slots", want: http.StatusBadRequest},
		{name: "malformed booking id", method: http.MethodGet, path: "/api/bookings/xyz", want: http.StatusBadRequest},
		{name: "broken json", method: http.MethodPost, path: "/api/bookings", body: "{", want: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", want: http.StatusNotFound},
		{name: "wrong method on experiences", method: http.MethodPost, path: "/api/experiences", want: http.StatusMethodNotAllowed},
		{name: "wrong method on booking", method: http.MethodDelete, path: "/api/bookings/1", want: http.StatusMethodNotAllowed},
		{name: "wrong method on health", method: http.MethodPost, path: "/health", want: http.StatusMethodNotAllowed},
		{name: "health", method: http.MethodGet, path: "/health", want: http.StatusOK},
		{name: "index", method: http.MethodGet, path: "/", want: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_MethodNotAllowedEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/experiences", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Method not allowed"}`, rec.Body.String())
}

func TestRouter_HealthAndIndexBodies(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"OK","message":"BookIt API is running"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), `"promoValidation":"/api/promo/validate"`)
	assert.Contains(t, rec.Body.String(), `"version":"1.0.0"`)
}

func TestRouter_CORS(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/experiences", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestClient_Health(t *testing.T) {
	client, _ := newTestClient(t)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", health.Status)
}

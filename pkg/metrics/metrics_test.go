package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := New("bookit")

	m.IncBookingsCreated(1)
	m.IncPromoValidation(PromoResultValid)
	m.IncPromoValidation(PromoResultValid)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsCreatedTotal.WithLabelValues("1")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.PromoValidationsTotal.WithLabelValues("valid")))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `bookings_created_total{experience_id="1",service="bookit"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}

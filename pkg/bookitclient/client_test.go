package bookitclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClientWithHTTP(srv.URL+"/", srv.Client())
}

func TestClient_ValidatePromo(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/promo/validate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req PromoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "FIRST50", req.Code)

		_, _ = w.Write([]byte(`{"success":true,"data":{"discount":500,"finalAmount":500,"discountType":"percentage","discountValue":50}}`))
	})

	result, err := client.ValidatePromo(context.Background(), PromoRequest{Code: "FIRST50", Amount: 1000})
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.Discount)
	assert.Equal(t, "percentage", result.DiscountType)
}

func TestClient_CreateBooking_ReturnsMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":7,"status":"confirmed"},"message":"Booking confirmed successfully!"}`))
	})

	booking, message, err := client.CreateBooking(context.Background(), BookingRequest{ExperienceID: 1, SlotID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(7), booking.ID)
	assert.Equal(t, "Booking confirmed successfully!", message)
}

func TestClient_APIErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   error
		wantField string
	}{
		{name: "bad request with field", status: http.StatusBadRequest, body: `{"success":false,"message":"userEmail is required","field":"userEmail"}`, wantErr: ErrBadRequest, wantField: "userEmail"},
		{name: "not found", status: http.StatusNotFound, body: `{"success":false,"message":"Booking not found"}`, wantErr: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: `{"success":false,"message":"internal server error"}`, wantErr: ErrServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetBooking(context.Background(), 1)
			require.ErrorIs(t, err, tt.wantErr)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantField, apiErr.Field)
		})
	}
}

func TestClient_InvalidResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := client.ListExperiences(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	_, err := NewClient(srv.URL, 0).ListSlots(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

package validate_promo

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/bookit-service/internal/domain"
	"github.com/m04kA/bookit-service/internal/infra/storage/memory"
	"github.com/m04kA/bookit-service/internal/infra/storage/seed"
	"github.com/m04kA/bookit-service/pkg/logger"
	"github.com/m04kA/bookit-service/pkg/metrics"
	"github.com/m04kA/bookit-service/pkg/validation"
)

func newUseCase(m *metrics.Metrics) *UseCase {
	store := memory.New(seed.MustDefault())
	return NewUseCase(store.Promos(), m, logger.Nop())
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		code         string
		amount       int64
		wantDiscount string
		wantFinal    string
		wantType     string
		wantValue    string
	}{
		{name: "percentage", code: "FIRST50", amount: 1000, wantDiscount: "500", wantFinal: "500", wantType: "percentage", wantValue: "50"},
		{name: "fixed larger than amount", code: "SAVE500", amount: 300, wantDiscount: "500", wantFinal: "0", wantType: "fixed", wantValue: "500"},
		{name: "small percentage", code: "WELCOME20", amount: 1000, wantDiscount: "200", wantFinal: "800", wantType: "percentage", wantValue: "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newUseCase(metrics.New("test")).Execute(context.Background(), &Request{
				Code:   tt.code,
				Amount: decimal.NewFromInt(tt.amount),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantDiscount, resp.Discount.String())
			assert.Equal(t, tt.wantFinal, resp.FinalAmount.String())
			assert.Equal(t, tt.wantType, resp.DiscountType)
			assert.Equal(t, tt.wantValue, resp.DiscountValue.String())
		})
	}
}

func TestUseCase_Execute_FractionalAmount(t *testing.T) {
	resp, err := newUseCase(metrics.New("test")).Execute(context.Background(), &Request{
		Code:   "FIRST50",
		Amount: decimal.RequireFromString("999"),
	})
	require.NoError(t, err)

	assert.Equal(t, "499.5", resp.Discount.String())
	assert.Equal(t, "499.5", resp.FinalAmount.String())
}

func TestUseCase_Execute_TinyPositiveAmount(t *testing.T) {
	resp, err := newUseCase(metrics.New("test")).Execute(context.Background(), &Request{
		Code:   "FIRST50",
		Amount: decimal.RequireFromString("1e-400"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Discount.IsPositive())
	assert.True(t, resp.FinalAmount.Equal(decimal.RequireFromString("5e-401")))
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		req       *Request
		wantField string
	}{
		{name: "missing code", req: &Request{Amount: decimal.NewFromInt(100)}, wantField: "code"},
		{name: "missing amount", req: &Request{Code: "FIRST50"}, wantField: "amount"},
		{name: "negative amount", req: &Request{Code: "FIRST50", Amount: decimal.NewFromInt(-5)}, wantField: "amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := metrics.New("test")

			_, err := newUseCase(m).Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)

			fieldErr, ok := validation.AsFieldError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantField, fieldErr.Field)
			assert.Equal(t, float64(1), testutil.ToFloat64(m.PromoValidationsTotal.WithLabelValues(metrics.PromoResultInvalid)))
		})
	}
}

func TestUseCase_Execute_UnknownCode(t *testing.T) {
	m := metrics.New("test")

	_, err := newUseCase(m).Execute(context.Background(), &Request{
		Code:   "first50",
		Amount: decimal.NewFromInt(1000),
	})
	assert.ErrorIs(t, err, ErrPromoNotFound)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.PromoValidationsTotal.WithLabelValues(metrics.PromoResultNotFound)))
}

type brokenRepo struct{}

func (brokenRepo) GetByCode(context.Context, string) (*domain.PromoCode, error) {
	return nil, errors.New("timeout")
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	uc := NewUseCase(brokenRepo{}, metrics.New("test"), logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Code: "FIRST50", Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, ErrInternal)
}

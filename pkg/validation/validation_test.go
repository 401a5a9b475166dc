package validation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type promoRequest struct {
	Code   string          `json:"code" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

type bookingRequest struct {
	ExperienceID int64  `json:"experienceId" validate:"required"`
	UserEmail    string `json:"userEmail" validate:"required,email"`
}

func TestStruct_ReportsJSONFieldName(t *testing.T) {
	err := Struct(&bookingRequest{UserEmail: "a@b.com"})
	require.Error(t, err)

	fieldErr, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "experienceId", fieldErr.Field)
	assert.Equal(t, "required", fieldErr.Tag)
	assert.Equal(t, "experienceId is required", fieldErr.Error())
}

func TestStruct_Email(t *testing.T) {
	err := Struct(&bookingRequest{ExperienceID: 1, UserEmail: "not-an-email"})

	fieldErr, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "userEmail", fieldErr.Field)
	assert.Equal(t, "email", fieldErr.Tag)
}

func TestStruct_Decimal(t *testing.T) {
	assert.NoError(t, Struct(&promoRequest{Code: "FIRST50", Amount: decimal.NewFromInt(1000)}))

	fieldErr, ok := AsFieldError(Struct(&promoRequest{Code: "FIRST50"}))
	require.True(t, ok)
	assert.Equal(t, "amount", fieldErr.Field)

	fieldErr, ok = AsFieldError(Struct(&promoRequest{Code: "FIRST50", Amount: decimal.NewFromInt(-5)}))
	require.True(t, ok)
	assert.Equal(t, "amount", fieldErr.Field)
	assert.Equal(t, "gt", fieldErr.Tag)
}

func TestStruct_DecimalBelowFloatRange(t *testing.T) {
	assert.NoError(t, Struct(&promoRequest{Code: "FIRST50", Amount: decimal.RequireFromString("1e-400")}))

	fieldErr, ok := AsFieldError(Struct(&promoRequest{Code: "FIRST50", Amount: decimal.RequireFromString("-1e-400")}))
	require.True(t, ok)
	assert.Equal(t, "amount", fieldErr.Field)
	assert.Equal(t, "gt", fieldErr.Tag)
}

func TestAsFieldError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("usecase: invalid input: %w", &FieldError{Field: "code", Tag: "required"})

	fieldErr, ok := AsFieldError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "code", fieldErr.Field)
}

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DiscountType represents how a promo code reduces the amount
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode is static reference data: a case-sensitive code and its discount rule
type PromoCode struct {
	Code  string
	Type  DiscountType
	Value decimal.Decimal // percentage: 0-100, fixed: currency units
}

// Discount describes the result of applying a promo code to an amount
type Discount struct {
	Amount      decimal.Decimal // discount before clamping
	FinalAmount decimal.Decimal // never negative
}

// NewPromoCode builds a promo code and checks the value range for its type
func NewPromoCode(code string, discountType DiscountType, value decimal.Decimal) (*PromoCode, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidPromoCode)
	}

	switch discountType {
	case DiscountPercentage:
		if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(MaxPercentageDiscount)) {
			return nil, fmt.Errorf("%w: percentage %s out of range [0, %d]", ErrInvalidPromoCode, value, MaxPercentageDiscount)
		}
	case DiscountFixed:
		if value.IsNegative() {
			return nil, fmt.Errorf("%w: fixed discount must not be negative", ErrInvalidPromoCode)
		}
	default:
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidPromoCode, discountType)
	}

	return &PromoCode{
		Code:  code,
		Type:  discountType,
		Value: value,
	}, nil
}

// Apply computes the discount for the amount.
// The final amount is clamped at zero, the discount itself is reported as is.
func (p *PromoCode) Apply(amount decimal.Decimal) Discount {
	var discount decimal.Decimal
	if p.Type == DiscountPercentage {
		// Shift(-2) divides by 100 exactly
		discount = amount.Mul(p.Value).Shift(-2)
	} else {
		discount = p.Value
	}

	final := amount.Sub(discount)
	if final.IsNegative() {
		final = decimal.Zero
	}

	return Discount{
		Amount:      discount,
		FinalAmount: final,
	}
}

package validate_promo

import (
	"github.com/shopspring/decimal"

	validatePromo "github.com/m04kA/bookit-service/internal/usecase/validate_promo"
)

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code   string          `json:"code"`
	Amount decimal.Decimal `json:"amount"`
}

// ValidatePromoResponse HTTP response model
type ValidatePromoResponse struct {
	Discount      float64 `json:"discount"`
	FinalAmount   float64 `json:"finalAmount"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidatePromoRequest) ToUseCaseRequest() *validatePromo.Request {
	return &validatePromo.Request{
		Code:   r.Code,
		Amount: r.Amount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validatePromo.Response) *ValidatePromoResponse {
	return &ValidatePromoResponse{
		Discount:      resp.Discount.InexactFloat64(),
		FinalAmount:   resp.FinalAmount.InexactFloat64(),
		DiscountType:  resp.DiscountType,
		DiscountValue: resp.DiscountValue.InexactFloat64(),
	}
}

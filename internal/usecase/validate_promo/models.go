package validate_promo

import "github.com/shopspring/decimal"

// Request модель запроса на проверку промокода
type Request struct {
	Code   string          `json:"code" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
}

// Response результат применения промокода к сумме
type Response struct {
	Discount      decimal.Decimal // скидка без ограничения снизу
	FinalAmount   decimal.Decimal // сумма к оплате, не меньше 0
	DiscountType  string
	DiscountValue decimal.Decimal
}

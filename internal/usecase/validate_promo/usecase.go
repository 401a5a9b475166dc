package validate_promo

import (
	"context"
	"errors"
	"fmt"

	promoRepo "github.com/m04kA/bookit-service/internal/infra/storage/promo"
	"github.com/m04kA/bookit-service/pkg/metrics"
)

// UseCase use case проверки промокода и расчета скидки
type UseCase struct {
	promoRepo PromoRepository
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(promoRepo PromoRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		promoRepo: promoRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute проверяет промокод и считает скидку для суммы. Состояние не меняет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidatePromo: validation failed: %v", err)
		uc.metrics.IncPromoValidation(metrics.PromoResultInvalid)
		return nil, err
	}

	promo, err := uc.promoRepo.GetByCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			uc.logger.Warn("ValidatePromo: promo code %q not found", req.Code)
			uc.metrics.IncPromoValidation(metrics.PromoResultNotFound)
			return nil, ErrPromoNotFound
		}
		uc.logger.Error("ValidatePromo: failed to get promo code %q: %v", req.Code, err)
		return nil, fmt.Errorf("%w: failed to get promo code: %v", ErrInternal, err)
	}

	discount := promo.Apply(req.Amount)
	uc.metrics.IncPromoValidation(metrics.PromoResultValid)

	uc.logger.Info("ValidatePromo: code=%s, amount=%s, discount=%s, final=%s",
		promo.Code, req.Amount, discount.Amount, discount.FinalAmount)

	return &Response{
		Discount:      discount.Amount,
		FinalAmount:   discount.FinalAmount,
		DiscountType:  string(promo.Type),
		DiscountValue: promo.Value,
	}, nil
}

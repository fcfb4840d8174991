package pricingservice

import (
	"context"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.GatewaySettings, error)
}

// Service computes bajet-mode prices. The adjustment is always applied to the
// canonical regular price, so repeated recalculation passes cannot compound
// the markup.
type Service struct {
	settingsRepo SettingsRepo
}

func New(settingsRepo SettingsRepo) *Service {
	return &Service{settingsRepo: settingsRepo}
}

// AdjustedPrice returns basePrice unchanged in normal mode and
// basePrice * (1 + percent/100) in bajet mode, rounded to two decimal places.
func AdjustedPrice(basePrice float64, saleType domain.SaleType, percent float64) float64 {
	if saleType != domain.SaleTypeBajet || basePrice <= 0 {
		return basePrice
	}
	multiplier := decimal.NewFromInt(1).Add(decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100)))
	adjusted := decimal.NewFromFloat(basePrice).Mul(multiplier)
	result, _ := adjusted.Round(2).Float64()
	return result
}

// MarkupPercent reads the configured percentage, clamped to [0,100].
func (s *Service) MarkupPercent(ctx context.Context) (float64, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to read markup percent", zap.Error(err))
		return 0, err
	}
	percent := settings.MarkupPercent
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return percent, nil
}

// Adjust applies the configured markup for the given sale type.
func (s *Service) Adjust(ctx context.Context, basePrice float64, saleType domain.SaleType) (float64, error) {
	if saleType != domain.SaleTypeBajet {
		return basePrice, nil
	}
	percent, err := s.MarkupPercent(ctx)
	if err != nil {
		return 0, err
	}
	return AdjustedPrice(basePrice, saleType, percent), nil
}

// CartSubtotal recomputes the cart total from canonical line prices.
func (s *Service) CartSubtotal(ctx context.Context, lines []domain.CartLine, saleType domain.SaleType) (float64, error) {
	percent := float64(0)
	if saleType == domain.SaleTypeBajet {
		p, err := s.MarkupPercent(ctx)
		if err != nil {
			return 0, err
		}
		percent = p
	}

	total := decimal.Zero
	for _, line := range lines {
		unit := AdjustedPrice(line.UnitPrice, saleType, percent)
		total = total.Add(decimal.NewFromFloat(unit).Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	result, _ := total.Round(2).Float64()
	return result, nil
}

package gatewayservice

import (
	"context"
	"errors"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/gateway"
	"go.uber.org/zap"
)

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.GatewaySettings, error)
	Update(ctx context.Context, s *domain.GatewaySettings) error
}

type Registry interface {
	All() []gateway.Gateway
	Available() []gateway.Gateway
	Get(id string) (gateway.Gateway, bool)
}

var (
	ErrInvalidMarkupPercent = errors.New("markup percent must be between 0 and 100")
	ErrGatewayNotRegistered = errors.New("gateway is not registered")
)

type Service struct {
	registry     Registry
	settingsRepo SettingsRepo
}

func New(registry Registry, settingsRepo SettingsRepo) *Service {
	return &Service{
		registry:     registry,
		settingsRepo: settingsRepo,
	}
}

// Filter narrows the offered gateways by the allow-list for the active sale
// type. An empty allow-list means no filtering. An empty result is returned
// as-is: a misconfigured allow-list surfaces as "no payment methods
// available" rather than silently falling back.
func Filter(available []gateway.Gateway, saleType domain.SaleType, settings *domain.GatewaySettings) []gateway.Gateway {
	allowList := settings.NormalGateways
	if saleType == domain.SaleTypeBajet {
		allowList = settings.BajetGateways
	}
	if len(allowList) == 0 {
		return available
	}

	allowed := make(map[string]bool, len(allowList))
	for _, id := range allowList {
		allowed[id] = true
	}

	if saleType == domain.SaleTypeBajet {
		// The credit gateway is always offered in bajet mode when registered.
		for _, id := range gateway.CreditGatewayIDs {
			if containsGateway(available, id) {
				allowed[id] = true
				break
			}
		}
	}

	filtered := make([]gateway.Gateway, 0, len(available))
	for _, g := range available {
		if allowed[g.ID()] {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func containsGateway(gateways []gateway.Gateway, id string) bool {
	for _, g := range gateways {
		if g.ID() == id {
			return true
		}
	}
	return false
}

// AvailableForCheckout lists the enabled gateways offered for the given sale
// type. The registry's plain accessors keep this free of any re-entrancy
// concern: resolving the credit gateway never goes back through the filter.
func (s *Service) AvailableForCheckout(ctx context.Context, saleType domain.SaleType) ([]gateway.Gateway, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		zap.L().Error("failed to load gateway settings", zap.Error(err))
		return nil, err
	}
	return Filter(s.registry.Available(), saleType, settings), nil
}

func (s *Service) GetSettings(ctx context.Context) (*domain.GatewaySettings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, settings *domain.GatewaySettings) error {
	if settings.MarkupPercent < 0 || settings.MarkupPercent > 100 {
		return ErrInvalidMarkupPercent
	}
	return s.settingsRepo.Update(ctx, settings)
}

// DefaultSecondGateway resolves the gateway that takes the remainder of a
// split payment.
func (s *Service) DefaultSecondGateway(ctx context.Context) (gateway.Gateway, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	g, ok := s.registry.Get(settings.DefaultSecondGateway)
	if !ok {
		return nil, ErrGatewayNotRegistered
	}
	return g, nil
}

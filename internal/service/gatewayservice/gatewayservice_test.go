package gatewayservice

import (
	"context"
	"errors"
	"testing"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/gateway"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRegistry, *MockSettingsRepo) {
	ctrl := gomock.NewController(t)
	registry := NewMockRegistry(ctrl)
	settingsRepo := NewMockSettingsRepo(ctrl)
	service := New(registry, settingsRepo)
	defer ctrl.Finish()
	return service, registry, settingsRepo
}

type stubGateway struct {
	id      string
	enabled bool
}

func (g stubGateway) ID() string    { return g.id }
func (g stubGateway) Title() string { return g.id }
func (g stubGateway) Enabled() bool { return g.enabled }
func (g stubGateway) ProcessPayment(_ context.Context, _ *domain.Order) (*gateway.PaymentResult, error) {
	return &gateway.PaymentResult{Success: true}, nil
}

func ids(gateways []gateway.Gateway) []string {
	out := make([]string, len(gateways))
	for i, g := range gateways {
		out[i] = g.ID()
	}
	return out
}

func TestFilter(t *testing.T) {
	mellat := stubGateway{id: "mellat", enabled: true}
	asan := stubGateway{id: "asanpardakht", enabled: true}
	credit := stubGateway{id: "bajet_credit", enabled: true}
	available := []gateway.Gateway{credit, mellat, asan}

	tests := []struct {
		name     string
		saleType domain.SaleType
		settings *domain.GatewaySettings
		expected []string
	}{
		{
			name:     "Empty allow-list leaves gateways unchanged",
			saleType: domain.SaleTypeNormal,
			settings: &domain.GatewaySettings{},
			expected: []string{"bajet_credit", "mellat", "asanpardakht"},
		},
		{
			name:     "Normal allow-list intersects",
			saleType: domain.SaleTypeNormal,
			settings: &domain.GatewaySettings{NormalGateways: []string{"mellat"}},
			expected: []string{"mellat"},
		},
		{
			name:     "Allow-listed but unregistered ids are ignored",
			saleType: domain.SaleTypeNormal,
			settings: &domain.GatewaySettings{NormalGateways: []string{"mellat", "sadad"}},
			expected: []string{"mellat"},
		},
		{
			name:     "Bajet mode force-includes the credit gateway",
			saleType: domain.SaleTypeBajet,
			settings: &domain.GatewaySettings{BajetGateways: []string{"mellat"}},
			expected: []string{"bajet_credit", "mellat"},
		},
		{
			name:     "Bajet allow-list naming only the credit gateway",
			saleType: domain.SaleTypeBajet,
			settings: &domain.GatewaySettings{BajetGateways: []string{"bajet_credit"}},
			expected: []string{"bajet_credit"},
		},
		{
			name:     "Normal mode never force-includes the credit gateway",
			saleType: domain.SaleTypeNormal,
			settings: &domain.GatewaySettings{NormalGateways: []string{"asanpardakht"}},
			expected: []string{"asanpardakht"},
		},
		{
			name:     "Misconfigured allow-list surfaces empty result",
			saleType: domain.SaleTypeNormal,
			settings: &domain.GatewaySettings{NormalGateways: []string{"sadad"}},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(available, tt.saleType, tt.settings)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilterWithoutCreditGateway(t *testing.T) {
	// The force-include only applies when a credit gateway is registered.
	available := []gateway.Gateway{
		stubGateway{id: "mellat", enabled: true},
	}
	settings := &domain.GatewaySettings{BajetGateways: []string{"mellat"}}

	got := Filter(available, domain.SaleTypeBajet, settings)
	assert.Equal(t, []string{"mellat"}, ids(got))
}

func TestAvailableForCheckout(t *testing.T) {
	service, registry, settingsRepo := NewMock(t)

	t.Run("Filters enabled gateways", func(t *testing.T) {
		settingsRepo.EXPECT().Get(gomock.Any()).Return(&domain.GatewaySettings{
			NormalGateways: []string{"mellat"},
		}, nil)
		registry.EXPECT().Available().Return([]gateway.Gateway{
			stubGateway{id: "mellat", enabled: true},
			stubGateway{id: "asanpardakht", enabled: true},
		})

		got, err := service.AvailableForCheckout(context.Background(), domain.SaleTypeNormal)
		assert.NoError(t, err)
		assert.Equal(t, []string{"mellat"}, ids(got))
	})

	t.Run("Settings error", func(t *testing.T) {
		settingsRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db error"))

		_, err := service.AvailableForCheckout(context.Background(), domain.SaleTypeNormal)
		assert.Error(t, err)
	})
}

func TestUpdateSettings(t *testing.T) {
	service, _, settingsRepo := NewMock(t)

	t.Run("Valid settings persisted", func(t *testing.T) {
		settings := &domain.GatewaySettings{MarkupPercent: 12, DefaultSecondGateway: "mellat"}
		settingsRepo.EXPECT().Update(gomock.Any(), settings).Return(nil)

		assert.NoError(t, service.UpdateSettings(context.Background(), settings))
	})

	t.Run("Reject markup above hundred", func(t *testing.T) {
		err := service.UpdateSettings(context.Background(), &domain.GatewaySettings{MarkupPercent: 101})
		assert.ErrorIs(t, err, ErrInvalidMarkupPercent)
	})

	t.Run("Reject negative markup", func(t *testing.T) {
		err := service.UpdateSettings(context.Background(), &domain.GatewaySettings{MarkupPercent: -1})
		assert.ErrorIs(t, err, ErrInvalidMarkupPercent)
	})
}

func TestDefaultSecondGateway(t *testing.T) {
	service, registry, settingsRepo := NewMock(t)

	t.Run("Resolves configured gateway", func(t *testing.T) {
		settingsRepo.EXPECT().Get(gomock.Any()).Return(&domain.GatewaySettings{
			DefaultSecondGateway: "mellat",
		}, nil)
		registry.EXPECT().Get("mellat").Return(stubGateway{id: "mellat", enabled: true}, true)

		g, err := service.DefaultSecondGateway(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, "mellat", g.ID())
	})

	t.Run("Unregistered gateway", func(t *testing.T) {
		settingsRepo.EXPECT().Get(gomock.Any()).Return(&domain.GatewaySettings{
			DefaultSecondGateway: "sadad",
		}, nil)
		registry.EXPECT().Get("sadad").Return(nil, false)

		_, err := service.DefaultSecondGateway(context.Background())
		assert.ErrorIs(t, err, ErrGatewayNotRegistered)
	})
}

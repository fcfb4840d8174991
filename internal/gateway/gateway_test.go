package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/pkg/clients"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type stubGateway struct {
	id      string
	enabled bool
}

func (g stubGateway) ID() string    { return g.id }
func (g stubGateway) Title() string { return g.id }
func (g stubGateway) Enabled() bool { return g.enabled }
func (g stubGateway) ProcessPayment(context.Context, *domain.Order) (*PaymentResult, error) {
	return &PaymentResult{Success: true}, nil
}

func TestRegistry(t *testing.T) {
	t.Run("All preserves registration order", func(t *testing.T) {
		r := NewRegistry()
		r.Register(stubGateway{id: "mellat", enabled: true})
		r.Register(stubGateway{id: "zarinpal", enabled: false})
		r.Register(stubGateway{id: "bajet_credit", enabled: true})

		all := r.All()
		assert.Len(t, all, 3)
		assert.Equal(t, "mellat", all[0].ID())
		assert.Equal(t, "zarinpal", all[1].ID())
		assert.Equal(t, "bajet_credit", all[2].ID())
	})

	t.Run("Available skips disabled gateways", func(t *testing.T) {
		r := NewRegistry()
		r.Register(stubGateway{id: "mellat", enabled: true})
		r.Register(stubGateway{id: "zarinpal", enabled: false})

		available := r.Available()
		assert.Len(t, available, 1)
		assert.Equal(t, "mellat", available[0].ID())
	})

	t.Run("Re-registering an id replaces without duplicating", func(t *testing.T) {
		r := NewRegistry()
		r.Register(stubGateway{id: "mellat", enabled: false})
		r.Register(stubGateway{id: "mellat", enabled: true})

		all := r.All()
		assert.Len(t, all, 1)
		assert.True(t, all[0].Enabled())
	})

	t.Run("Get", func(t *testing.T) {
		r := NewRegistry()
		r.Register(stubGateway{id: "mellat", enabled: true})

		g, ok := r.Get("mellat")
		assert.True(t, ok)
		assert.Equal(t, "mellat", g.ID())

		_, ok = r.Get("unknown")
		assert.False(t, ok)
	})
}

func TestCreditGateway(t *testing.T) {
	g := NewCreditGateway()

	assert.Equal(t, "bajet_credit", g.ID())
	assert.Contains(t, CreditGatewayIDs, g.ID())
	assert.True(t, g.Enabled())

	result, err := g.ProcessPayment(context.Background(), &domain.Order{OrderNumber: "2377225624"})
	assert.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.RedirectURL)
}

func TestExternalGateway_ProcessPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := clients.NewMockHTTPClientI(ctrl)

	g := NewExternalGateway("mellat", "Mellat", "http://localhost:8081", client)
	order := &domain.Order{OrderNumber: "2377225624", Total: 372}

	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
		result      *PaymentResult
	}{
		{
			name: "Successful payment returns redirect",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/payments", nil, gomock.Any()).
					DoAndReturn(func(url string, headers http.Header, body []byte) (int, []byte, error) {
						var req map[string]any
						assert.NoError(t, json.Unmarshal(body, &req))
						assert.Equal(t, "mellat", req["gateway"])
						assert.Equal(t, "2377225624", req["order"])
						assert.Equal(t, 372.0, req["amount"])
						return http.StatusOK, []byte(`{"result":"success","redirect":"http://pay.example/redirect"}`), nil
					})
			},
			result: &PaymentResult{Success: true, RedirectURL: "http://pay.example/redirect"},
		},
		{
			name: "Provider failure result",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/payments", nil, gomock.Any()).
					Return(http.StatusOK, []byte(`{"result":"failure"}`), nil)
			},
			result: &PaymentResult{Success: false},
		},
		{
			name: "Non-200 status",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/payments", nil, gomock.Any()).
					Return(http.StatusInternalServerError, nil, nil)
			},
			expectErr: true,
		},
		{
			name: "Transport error",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/payments", nil, gomock.Any()).
					Return(0, nil, errors.New("connection refused"))
			},
			expectErr: true,
		},
		{
			name: "Malformed response body",
			prepareMock: func() {
				client.EXPECT().
					Post("http://localhost:8081/api/payments", nil, gomock.Any()).
					Return(http.StatusOK, []byte(`not json`), nil)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := g.ProcessPayment(context.Background(), order)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

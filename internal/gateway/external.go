package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/pkg/clients"
	"go.uber.org/zap"
)

// ExternalGateway fronts a payment provider reachable over HTTP. A process
// request returns a redirect URL the shopper is sent to; settlement status is
// polled separately by the settlement watcher.
type ExternalGateway struct {
	id      string
	title   string
	enabled bool
	baseURL string
	client  clients.HTTPClientI
}

func NewExternalGateway(id, title, baseURL string, client clients.HTTPClientI) *ExternalGateway {
	return &ExternalGateway{
		id:      id,
		title:   title,
		enabled: true,
		baseURL: baseURL,
		client:  client,
	}
}

func (g *ExternalGateway) ID() string    { return g.id }
func (g *ExternalGateway) Title() string { return g.title }
func (g *ExternalGateway) Enabled() bool { return g.enabled }

type processRequest struct {
	Gateway     string  `json:"gateway"`
	OrderNumber string  `json:"order"`
	Amount      float64 `json:"amount"`
}

type processResponse struct {
	Result   string `json:"result"`
	Redirect string `json:"redirect"`
}

func (g *ExternalGateway) ProcessPayment(ctx context.Context, order *domain.Order) (*PaymentResult, error) {
	body, err := json.Marshal(processRequest{
		Gateway:     g.id,
		OrderNumber: order.OrderNumber,
		Amount:      order.Total,
	})
	if err != nil {
		return nil, err
	}

	statusCode, respBody, err := g.client.Post(g.baseURL+"/api/payments", nil, body)
	if err != nil {
		zap.L().Error("payment request failed",
			zap.String("gateway", g.id), zap.String("order", order.OrderNumber), zap.Error(err))
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("gateway %s rejected payment for order %s: status %d", g.id, order.OrderNumber, statusCode)
	}

	var resp processResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse gateway response: %w", err)
	}

	return &PaymentResult{
		Success:     resp.Result == "success",
		RedirectURL: resp.Redirect,
	}, nil
}

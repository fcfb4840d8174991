package gateway

import (
	"context"
	"sync"

	"github.com/arta-commerce/bajetpay/internal/domain"
)

type PaymentResult struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

type Gateway interface {
	ID() string
	Title() string
	Enabled() bool
	ProcessPayment(ctx context.Context, order *domain.Order) (*PaymentResult, error)
}

// CreditGatewayIDs lists the ids recognized as the built-in credit gateway,
// in lookup order. The filter force-includes the first registered one in
// bajet mode.
var CreditGatewayIDs = []string{"bajet_credit", "bajet", "kalanu"}

// Registry is an explicit gateway registry. All returns every registered
// gateway including disabled ones, so callers never need to re-enter the
// availability filter to resolve a gateway.
type Registry struct {
	mu       sync.RWMutex
	ids      []string
	gateways map[string]Gateway
}

func NewRegistry() *Registry {
	return &Registry{gateways: make(map[string]Gateway)}
}

func (r *Registry) Register(g Gateway) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.gateways[g.ID()]; !exists {
		r.ids = append(r.ids, g.ID())
	}
	r.gateways[g.ID()] = g
}

func (r *Registry) Get(id string) (Gateway, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.gateways[id]
	return g, ok
}

func (r *Registry) All() []Gateway {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Gateway, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.gateways[id])
	}
	return out
}

func (r *Registry) Available() []Gateway {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Gateway
	for _, id := range r.ids {
		if g := r.gateways[id]; g.Enabled() {
			out = append(out, g)
		}
	}
	return out
}

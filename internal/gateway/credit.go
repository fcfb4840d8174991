package gateway

import (
	"context"

	"github.com/arta-commerce/bajetpay/internal/domain"
)

// CreditGateway is the built-in "pay from Bajet credit" method. It carries no
// redirect flow of its own: settlement happens against the ledger in the
// checkout service. It exists so the gateway filter can always offer it in
// bajet mode.
type CreditGateway struct{}

func NewCreditGateway() *CreditGateway {
	return &CreditGateway{}
}

func (g *CreditGateway) ID() string    { return "bajet_credit" }
func (g *CreditGateway) Title() string { return "Bajet credit" }
func (g *CreditGateway) Enabled() bool { return true }

func (g *CreditGateway) ProcessPayment(_ context.Context, _ *domain.Order) (*PaymentResult, error) {
	return &PaymentResult{Success: true}, nil
}

package checkoutservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/gateway"
	"github.com/arta-commerce/bajetpay/internal/service/creditservice"
	"github.com/arta-commerce/bajetpay/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Ledger interface {
	GetBalance(ctx context.Context, userID int) (float64, error)
	Decrease(ctx context.Context, userID int, amount float64, reason string, actorID int) (*domain.UserCredit, error)
}

type OrderRepo interface {
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindByID(ctx context.Context, orderID int) (*domain.Order, error)
	FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	Save(ctx context.Context, order *domain.Order) error
	Update(ctx context.Context, order *domain.Order) error
}

type Sessions interface {
	GetCart(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	ClearCart(ctx context.Context, sessionID string) error
	GetPending(ctx context.Context, sessionID string) (*domain.PendingSettlement, error)
	SetPending(ctx context.Context, sessionID string, pending *domain.PendingSettlement) error
	ClearPending(ctx context.Context, sessionID string) error
}

type Pricing interface {
	CartSubtotal(ctx context.Context, lines []domain.CartLine, saleType domain.SaleType) (float64, error)
}

type Gateways interface {
	DefaultSecondGateway(ctx context.Context) (gateway.Gateway, error)
}

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

const (
	creditFeeLabel     = "Bajet credit"
	creditPaymentTitle = "Paid from Bajet credit"
	secondOrderNumLen  = 12
	systemActorID      = 0
)

type FeeLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	CreditFee float64 `json:"credit_fee"`
	Total     float64 `json:"total"`
}

type Decision struct {
	PaymentType     string  `json:"payment_type"`
	Total           float64 `json:"total"`
	CreditUsed      float64 `json:"credit_used"`
	RemainingAmount float64 `json:"remaining_amount"`
}

type PaymentOutcome struct {
	SecondOrderNumber string `json:"second_order_number,omitempty"`
	RedirectURL       string `json:"redirect_url,omitempty"`
}

// Service drives the bajet checkout and settlement flow. Normal-mode orders
// bypass it entirely.
type Service struct {
	ledger    Ledger
	orderRepo OrderRepo
	sessions  Sessions
	pricing   Pricing
	gateways  Gateways
}

func New(ledger Ledger, orderRepo OrderRepo, sessions Sessions, pricing Pricing, gateways Gateways) *Service {
	return &Service{
		ledger:    ledger,
		orderRepo: orderRepo,
		sessions:  sessions,
		pricing:   pricing,
		gateways:  gateways,
	}
}

func round2(v float64) float64 {
	out, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return out
}

// CartFee returns the credit deduction fee line, or nil when none applies.
// The fee is recomputed from the canonical cart lines on every pass, so a
// previously applied fee can never be counted twice.
func (s *Service) CartFee(ctx context.Context, userID int, sessionID string, saleType domain.SaleType) (*FeeLine, error) {
	if saleType != domain.SaleTypeBajet {
		return nil, nil
	}

	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance <= 0 {
		return nil, nil
	}

	lines, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	subtotal, err := s.pricing.CartSubtotal(ctx, lines, saleType)
	if err != nil {
		return nil, err
	}
	if subtotal <= 0 {
		return nil, nil
	}

	discount := balance
	if subtotal < balance {
		discount = subtotal
	}
	return &FeeLine{Label: creditFeeLabel, Amount: -round2(discount)}, nil
}

// CartTotals computes the marked-up subtotal, the credit fee and the amount
// left to pay, always from the canonical line prices.
func (s *Service) CartTotals(ctx context.Context, userID int, sessionID string, saleType domain.SaleType) (*Totals, error) {
	lines, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	subtotal, err := s.pricing.CartSubtotal(ctx, lines, saleType)
	if err != nil {
		return nil, err
	}

	totals := &Totals{Subtotal: subtotal, Total: subtotal}

	fee, err := s.CartFee(ctx, userID, sessionID, saleType)
	if err != nil {
		return nil, err
	}
	if fee != nil {
		totals.CreditFee = fee.Amount
		totals.Total = round2(subtotal + fee.Amount)
	}
	return totals, nil
}

// Submit decides the settlement shape for the pending order and parks the
// decision in the session: the order object does not exist yet at this point.
func (s *Service) Submit(ctx context.Context, userID int, sessionID string, saleType domain.SaleType) (*Decision, error) {
	if saleType != domain.SaleTypeBajet {
		if err := s.sessions.ClearPending(ctx, sessionID); err != nil {
			zap.L().Warn("failed to clear pending settlement", zap.Error(err))
		}
		return &Decision{PaymentType: domain.PaymentTypeNone}, nil
	}

	lines, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal, err := s.pricing.CartSubtotal(ctx, lines, saleType)
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending := &domain.PendingSettlement{SaleType: string(saleType)}
	decision := &Decision{Total: subtotal}

	switch {
	case balance >= subtotal && subtotal > 0:
		pending.PaymentType = domain.PaymentTypeFullBajet
		pending.FullCredit = true
		pending.CreditAmount = subtotal
		decision.PaymentType = domain.PaymentTypeFullBajet
		decision.CreditUsed = subtotal
	case balance > 0:
		pending.PaymentType = domain.PaymentTypeSplit
		pending.CreditUsed = balance
		pending.RemainingAmount = round2(subtotal - balance)
		decision.PaymentType = domain.PaymentTypeSplit
		decision.CreditUsed = balance
		decision.RemainingAmount = pending.RemainingAmount
	default:
		pending.PaymentType = domain.PaymentTypeNone
		decision.PaymentType = domain.PaymentTypeNone
	}

	if err := s.sessions.SetPending(ctx, sessionID, pending); err != nil {
		return nil, err
	}
	return decision, nil
}

// OrderCreated attaches the parked settlement decision to the freshly created
// order and, for a fully covered order, settles it from the ledger. The
// balance is re-checked inside the ledger's locked deduction: if it dropped
// since submission the order stays unpaid and falls through to gateway
// payment.
func (s *Service) OrderCreated(ctx context.Context, userID int, sessionID, orderNumber string, total float64) (*domain.Order, error) {
	if existing, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	pending, err := s.sessions.GetPending(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		UserID:      userID,
		OrderNumber: orderNumber,
		Status:      domain.OrderStatusNew,
		Total:       total,
		SaleType:    string(domain.SaleTypeNormal),
		PaymentType: domain.PaymentTypeNone,
	}
	if pending != nil {
		order.SaleType = pending.SaleType
		order.PaymentType = pending.PaymentType
		if pending.PaymentType == domain.PaymentTypeSplit {
			order.CreditUsed = pending.CreditUsed
			order.RemainingAmount = pending.RemainingAmount
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if pending != nil && pending.FullCredit && order.SaleType == string(domain.SaleTypeBajet) && order.Total > 0 {
		reason := fmt.Sprintf("payment for order #%s from Bajet credit", order.OrderNumber)
		_, err := s.ledger.Decrease(ctx, userID, order.Total, reason, systemActorID)
		switch {
		case err == nil:
			order.PaymentType = domain.PaymentTypeFullCredit
			order.PaidViaCredit = true
			order.Status = domain.OrderStatusProcessing
			order.PaymentMethod = gateway.CreditGatewayIDs[0]
			order.PaymentMethodTitle = creditPaymentTitle
			if err := s.orderRepo.Update(ctx, order); err != nil {
				return nil, err
			}
			if err := s.sessions.ClearPending(ctx, sessionID); err != nil {
				zap.L().Warn("failed to clear pending settlement", zap.Error(err))
			}
		case errors.Is(err, creditservice.ErrInsufficientBalance):
			zap.L().Warn("balance dropped since submission, falling through to gateway payment",
				zap.String("order", order.OrderNumber), zap.Int("userID", userID))
		default:
			return nil, err
		}
	}

	if err := s.sessions.ClearCart(ctx, sessionID); err != nil {
		zap.L().Warn("failed to clear cart", zap.Error(err))
	}
	return order, nil
}

// PaymentComplete settles the credit leg of a bajet order once the host
// reports the payment as completed. Deductions are guarded by persisted
// markers so they run at most once per order.
func (s *Service) PaymentComplete(ctx context.Context, orderNumber string) (*PaymentOutcome, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.SaleType != string(domain.SaleTypeBajet) {
		return &PaymentOutcome{}, nil
	}

	switch order.PaymentType {
	case domain.PaymentTypeFullBajet:
		return &PaymentOutcome{}, s.settleFullBajet(ctx, order)
	case domain.PaymentTypeSplit:
		return s.settleSplit(ctx, order)
	}
	return &PaymentOutcome{}, nil
}

func (s *Service) settleFullBajet(ctx context.Context, order *domain.Order) error {
	if order.PaidViaCredit {
		return nil
	}
	reason := fmt.Sprintf("payment for order #%s from Bajet credit", order.OrderNumber)
	_, err := s.ledger.Decrease(ctx, order.UserID, order.Total, reason, systemActorID)
	if err != nil {
		if errors.Is(err, creditservice.ErrInsufficientBalance) {
			zap.L().Warn("insufficient balance for full bajet settlement",
				zap.String("order", order.OrderNumber))
			return nil
		}
		return err
	}
	order.PaidViaCredit = true
	order.PaymentMethodTitle = creditPaymentTitle
	return s.orderRepo.Update(ctx, order)
}

func (s *Service) settleSplit(ctx context.Context, order *domain.Order) (*PaymentOutcome, error) {
	if !order.CreditPaid && order.CreditUsed > 0 {
		reason := fmt.Sprintf("partial payment for order #%s (Bajet)", order.OrderNumber)
		_, err := s.ledger.Decrease(ctx, order.UserID, order.CreditUsed, reason, systemActorID)
		switch {
		case err == nil:
			order.CreditPaid = true
			if err := s.orderRepo.Update(ctx, order); err != nil {
				return nil, err
			}
		case errors.Is(err, creditservice.ErrInsufficientBalance):
			zap.L().Warn("insufficient balance for split credit leg",
				zap.String("order", order.OrderNumber))
		default:
			return nil, err
		}
	}

	outcome := &PaymentOutcome{}
	if order.SecondPaymentDone || order.RemainingAmount <= 0 {
		return outcome, nil
	}

	second, err := s.ensureSecondOrder(ctx, order)
	if err != nil {
		return nil, err
	}
	outcome.SecondOrderNumber = second.OrderNumber

	g, err := s.gateways.DefaultSecondGateway(ctx)
	if err != nil {
		zap.L().Error("no default second gateway configured", zap.Error(err))
		return outcome, nil
	}
	result, err := g.ProcessPayment(ctx, second)
	if err != nil {
		zap.L().Error("second payment processing failed",
			zap.String("order", order.OrderNumber), zap.Error(err))
		return outcome, nil
	}
	if result.Success {
		outcome.RedirectURL = result.RedirectURL
	}
	return outcome, nil
}

// ensureSecondOrder creates the linked order for the remainder exactly once.
func (s *Service) ensureSecondOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.SecondOrderNumber != "" {
		second, err := s.orderRepo.FindByOrderNumber(ctx, order.SecondOrderNumber)
		if err != nil {
			return nil, err
		}
		if second != nil {
			return second, nil
		}
	}

	g, err := s.gateways.DefaultSecondGateway(ctx)
	paymentMethod := ""
	paymentTitle := ""
	if err == nil {
		paymentMethod = g.ID()
		paymentTitle = g.Title()
	}

	second := &domain.Order{
		UserID:          order.UserID,
		OrderNumber:     validate.NewOrderNumber(secondOrderNumLen),
		Status:          domain.OrderStatusNew,
		Total:           order.RemainingAmount,
		SaleType:        string(domain.SaleTypeBajet),
		PaymentType:     domain.PaymentTypeNone,
		IsSecondPayment: true,
		OriginalOrderID: order.ID,

		PaymentMethod:      paymentMethod,
		PaymentMethodTitle: paymentTitle,
	}
	if err := s.orderRepo.Save(ctx, second); err != nil {
		return nil, err
	}

	order.SecondOrderNumber = second.OrderNumber
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return second, nil
}

// OrderStatusChanged reacts to host lifecycle transitions. A second-payment
// order reaching processing marks the original's second leg settled and
// completes it.
func (s *Service) OrderStatusChanged(ctx context.Context, orderNumber, status string) error {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}

	order.Status = status
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return err
	}

	if status != domain.OrderStatusProcessing || !order.IsSecondPayment || order.OriginalOrderID == 0 {
		return nil
	}

	original, err := s.orderRepo.FindByID(ctx, order.OriginalOrderID)
	if err != nil {
		return err
	}
	if original == nil || original.SecondPaymentDone {
		return nil
	}

	original.SecondPaymentDone = true
	original.Status = domain.OrderStatusCompleted
	if err := s.orderRepo.Update(ctx, original); err != nil {
		return err
	}
	zap.L().Info("split order settled",
		zap.String("order", original.OrderNumber),
		zap.String("secondOrder", order.OrderNumber))
	return nil
}

func (s *Service) GetOrders(ctx context.Context, userID int) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

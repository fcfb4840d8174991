package saletypeservice

import (
	"context"
	"errors"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"go.uber.org/zap"
)

type Sessions interface {
	GetSaleType(ctx context.Context, sessionID string) (string, error)
	SetSaleType(ctx context.Context, sessionID string, value string) error
	GetCart(ctx context.Context, sessionID string) ([]domain.CartLine, error)
}

var (
	ErrInvalidSaleType = errors.New("invalid sale type")
	ErrCartNotEmpty    = errors.New("cart must be empty to switch sale type")
)

// Service is the sale-type selector. The cookie and the session both hold the
// value; Resolve is the single authoritative read with cookie > session >
// normal precedence.
type Service struct {
	sessions Sessions
}

func New(sessions Sessions) *Service {
	return &Service{sessions: sessions}
}

// Resolve returns the active sale type. A valid cookie wins and is synced
// into the session; an invalid or missing cookie falls back to the session,
// which falls back to normal.
func (s *Service) Resolve(ctx context.Context, sessionID, cookieValue string) domain.SaleType {
	if domain.ValidSaleType(cookieValue) {
		if err := s.sessions.SetSaleType(ctx, sessionID, cookieValue); err != nil {
			zap.L().Warn("failed to sync sale type cookie into session", zap.Error(err))
		}
		return domain.SaleType(cookieValue)
	}

	stored, err := s.sessions.GetSaleType(ctx, sessionID)
	if err != nil || !domain.ValidSaleType(stored) {
		return domain.SaleTypeNormal
	}
	return domain.SaleType(stored)
}

// Update handles the standalone selector. Switching modes with items in the
// cart is rejected; the client-side check is advisory only.
func (s *Service) Update(ctx context.Context, sessionID, value string) (domain.SaleType, error) {
	if !domain.ValidSaleType(value) {
		return "", ErrInvalidSaleType
	}

	lines, err := s.sessions.GetCart(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if len(lines) > 0 {
		return "", ErrCartNotEmpty
	}

	if err := s.sessions.SetSaleType(ctx, sessionID, value); err != nil {
		return "", err
	}
	return domain.SaleType(value), nil
}

// Set records the sale type chosen in the checkout dropdown, where a filled
// cart is expected.
func (s *Service) Set(ctx context.Context, sessionID, value string) (domain.SaleType, error) {
	if !domain.ValidSaleType(value) {
		return "", ErrInvalidSaleType
	}
	if err := s.sessions.SetSaleType(ctx, sessionID, value); err != nil {
		return "", err
	}
	return domain.SaleType(value), nil
}

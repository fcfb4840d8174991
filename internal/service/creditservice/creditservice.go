package creditservice

import (
	"context"
	"errors"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/pg"
	"go.uber.org/zap"
)

type CreditRepo interface {
	GetUserCredit(ctx context.Context, userID int) (*domain.UserCredit, error)
	GetUserCreditForUpdate(ctx context.Context, userID int) (*domain.UserCredit, error)
	CreateUserCredit(ctx context.Context, userID int) (*domain.UserCredit, error)
	UpdateUserCredit(ctx context.Context, userID int, balance float64) (*domain.UserCredit, error)
	InsertHistory(ctx context.Context, entry *domain.CreditHistoryEntry) (*domain.CreditHistoryEntry, error)
	GetHistory(ctx context.Context, userID int, limit int) ([]domain.CreditHistoryEntry, error)
}

var (
	ErrInvalidAmount       = errors.New("amount must be greater than zero")
	ErrInvalidBalance      = errors.New("balance cannot be negative")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Service is the credit ledger. Every balance change goes through a single
// transactional path that locks the credit row, so concurrent
// check-then-deduct sequences for one user are serialized, and the balance
// update and its history entry land atomically.
type Service struct {
	creditRepo CreditRepo
	txManager  pg.TXManager
}

func New(creditRepo CreditRepo, txManager pg.TXManager) *Service {
	return &Service{
		creditRepo: creditRepo,
		txManager:  txManager,
	}
}

// GetBalance returns the user's balance, creating a zero record on first
// access.
func (s *Service) GetBalance(ctx context.Context, userID int) (float64, error) {
	credit, err := s.creditRepo.GetUserCredit(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	if credit == nil {
		credit, err = s.creditRepo.CreateUserCredit(ctx, userID)
		if err != nil {
			zap.L().Error("failed to create credit record", zap.Error(err))
			return 0, err
		}
	}
	return credit.Balance, nil
}

func (s *Service) CreateCredit(ctx context.Context, userID int) (*domain.UserCredit, error) {
	credit, err := s.creditRepo.CreateUserCredit(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create credit record", zap.Error(err))
		return nil, err
	}
	return credit, nil
}

// AdjustBalance sets the balance to an absolute value and logs the change.
// A zero delta writes nothing.
func (s *Service) AdjustBalance(ctx context.Context, userID int, newBalance float64, reason string, actorID int) (*domain.UserCredit, error) {
	if newBalance < 0 {
		return nil, ErrInvalidBalance
	}
	return s.applyChange(ctx, userID, reason, actorID, func(current float64) (float64, error) {
		return newBalance, nil
	})
}

func (s *Service) Increase(ctx context.Context, userID int, amount float64, reason string, actorID int) (*domain.UserCredit, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.applyChange(ctx, userID, reason, actorID, func(current float64) (float64, error) {
		return current + amount, nil
	})
}

func (s *Service) Decrease(ctx context.Context, userID int, amount float64, reason string, actorID int) (*domain.UserCredit, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.applyChange(ctx, userID, reason, actorID, func(current float64) (float64, error) {
		if current-amount < 0 {
			return 0, ErrInsufficientBalance
		}
		return current - amount, nil
	})
}

// applyChange runs the locked read-validate-write-log sequence. The next
// balance is computed from the locked value, never from a stale read.
func (s *Service) applyChange(ctx context.Context, userID int, reason string, actorID int, next func(current float64) (float64, error)) (*domain.UserCredit, error) {
	var updated *domain.UserCredit

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		credit, err := s.creditRepo.GetUserCreditForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if credit == nil {
			credit, err = s.creditRepo.CreateUserCredit(ctx, userID)
			if err != nil {
				return err
			}
		}

		newBalance, err := next(credit.Balance)
		if err != nil {
			return err
		}

		delta := newBalance - credit.Balance
		if delta == 0 {
			updated = credit
			return nil
		}

		updated, err = s.creditRepo.UpdateUserCredit(ctx, userID, newBalance)
		if err != nil {
			return err
		}

		kind := domain.ChangeKindIncrease
		if delta < 0 {
			kind = domain.ChangeKindDecrease
		}
		_, err = s.creditRepo.InsertHistory(ctx, &domain.CreditHistoryEntry{
			UserID:          userID,
			PreviousBalance: credit.Balance,
			NewBalance:      newBalance,
			Delta:           delta,
			Kind:            kind,
			Reason:          reason,
			ActorID:         actorID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientBalance) {
			zap.L().Error("failed to apply balance change", zap.Int("userID", userID), zap.Error(err))
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int, limit int) ([]domain.CreditHistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.creditRepo.GetHistory(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch credit history", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

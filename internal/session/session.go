package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Visitor sessions live in redis keyed by the session id cookie. The sale
// type is additionally mirrored into a durable cookie by the handler layer;
// this store only owns the session side.
const sessionTTL = 30 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

func key(sessionID, field string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, field)
}

func (s *Store) GetSaleType(ctx context.Context, sessionID string) (string, error) {
	val, err := s.rdb.Get(ctx, key(sessionID, "sale_type")).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		zap.L().Error("failed to read sale type from session", zap.Error(err))
		return "", err
	}
	return val, nil
}

func (s *Store) SetSaleType(ctx context.Context, sessionID string, value string) error {
	if err := s.rdb.Set(ctx, key(sessionID, "sale_type"), value, sessionTTL).Err(); err != nil {
		zap.L().Error("failed to store sale type in session", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) GetCart(ctx context.Context, sessionID string) ([]domain.CartLine, error) {
	raw, err := s.rdb.Get(ctx, key(sessionID, "cart")).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to read cart from session", zap.Error(err))
		return nil, err
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("corrupt cart payload: %w", err)
	}
	return lines, nil
}

func (s *Store) SetCart(ctx context.Context, sessionID string, lines []domain.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key(sessionID, "cart"), raw, sessionTTL).Err(); err != nil {
		zap.L().Error("failed to store cart in session", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID, "cart")).Err()
}

func (s *Store) GetPending(ctx context.Context, sessionID string) (*domain.PendingSettlement, error) {
	raw, err := s.rdb.Get(ctx, key(sessionID, "pending")).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to read pending settlement from session", zap.Error(err))
		return nil, err
	}
	var pending domain.PendingSettlement
	if err := json.Unmarshal(raw, &pending); err != nil {
		return nil, fmt.Errorf("corrupt pending settlement payload: %w", err)
	}
	return &pending, nil
}

func (s *Store) SetPending(ctx context.Context, sessionID string, pending *domain.PendingSettlement) error {
	raw, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key(sessionID, "pending"), raw, sessionTTL).Err(); err != nil {
		zap.L().Error("failed to store pending settlement in session", zap.Error(err))
		return err
	}
	return nil
}

func (s *Store) ClearPending(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, key(sessionID, "pending")).Err()
}

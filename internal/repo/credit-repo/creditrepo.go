package creditrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetUserCredit(ctx context.Context, userID int) (*domain.UserCredit, error) {
	query := `
        SELECT id, user_id, balance
        FROM credits
        WHERE user_id = $1
    `
	return r.scanCredit(r.db.QueryRow(ctx, query, userID))
}

// GetUserCreditForUpdate takes a row lock so that check-then-deduct sequences
// are serialized per user. Must run inside a transaction.
func (r *Repository) GetUserCreditForUpdate(ctx context.Context, userID int) (*domain.UserCredit, error) {
	query := `
        SELECT id, user_id, balance
        FROM credits
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanCredit(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) scanCredit(row pgx.Row) (*domain.UserCredit, error) {
	var credit domain.UserCredit
	err := row.Scan(&credit.ID, &credit.UserID, &credit.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get user credit", zap.Error(err))
		return nil, err
	}
	return &credit, nil
}

func (r *Repository) CreateUserCredit(ctx context.Context, userID int) (*domain.UserCredit, error) {
	query := `
        INSERT INTO credits (user_id, balance)
        VALUES ($1, 0)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, balance
    `
	row := r.db.QueryRow(ctx, query, userID)
	var credit domain.UserCredit
	err := row.Scan(&credit.ID, &credit.UserID, &credit.Balance)
	if err != nil {
		zap.L().Error("failed to create user credit", zap.Error(err))
		return nil, err
	}
	return &credit, nil
}

func (r *Repository) UpdateUserCredit(ctx context.Context, userID int, balance float64) (*domain.UserCredit, error) {
	query := `
        UPDATE credits
        SET balance = $1
        WHERE user_id = $2
        RETURNING id, user_id, balance
    `
	row := r.db.QueryRow(ctx, query, balance, userID)
	var credit domain.UserCredit
	err := row.Scan(&credit.ID, &credit.UserID, &credit.Balance)
	if err != nil {
		zap.L().Error("failed to update user credit", zap.Error(err))
		return nil, err
	}
	return &credit, nil
}

func (r *Repository) InsertHistory(ctx context.Context, entry *domain.CreditHistoryEntry) (*domain.CreditHistoryEntry, error) {
	query := `
        INSERT INTO credit_history (user_id, previous_balance, new_balance, delta, kind, reason, actor_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		entry.UserID, entry.PreviousBalance, entry.NewBalance, entry.Delta, entry.Kind, entry.Reason, entry.ActorID)
	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		zap.L().Error("failed to insert credit history entry", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) GetHistory(ctx context.Context, userID int, limit int) ([]domain.CreditHistoryEntry, error) {
	query := `
        SELECT id, user_id, previous_balance, new_balance, delta, kind, reason, actor_id, created_at
        FROM credit_history
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to get credit history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.CreditHistoryEntry
	for rows.Next() {
		var e domain.CreditHistoryEntry
		err := rows.Scan(&e.ID, &e.UserID, &e.PreviousBalance, &e.NewBalance, &e.Delta, &e.Kind, &e.Reason, &e.ActorID, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan credit history row", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

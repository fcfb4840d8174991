package orderrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/pg"
	"go.uber.org/zap"
)

const orderColumns = `id, user_id, order_number, status, total, sale_type, payment_type,
        credit_used, remaining_amount, paid_via_credit, credit_paid, second_payment_done,
        second_order_number, is_second_payment, original_order_id,
        payment_method, payment_method_title, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.UserID, &o.OrderNumber, &o.Status, &o.Total, &o.SaleType,
		&o.PaymentType, &o.CreditUsed, &o.RemainingAmount, &o.PaidViaCredit, &o.CreditPaid,
		&o.SecondPaymentDone, &o.SecondOrderNumber, &o.IsSecondPayment, &o.OriginalOrderID,
		&o.PaymentMethod, &o.PaymentMethodTitle, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderNumber))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindByID(ctx context.Context, orderID int) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRow(ctx, query, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find order by id", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (r *Repository) FindOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get orders", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	query := `
        INSERT INTO orders (user_id, order_number, status, total, sale_type, payment_type,
            credit_used, remaining_amount, paid_via_credit, credit_paid, second_payment_done,
            second_order_number, is_second_payment, original_order_id,
            payment_method, payment_method_title)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		order.UserID, order.OrderNumber, order.Status, order.Total, order.SaleType,
		order.PaymentType, order.CreditUsed, order.RemainingAmount, order.PaidViaCredit,
		order.CreditPaid, order.SecondPaymentDone, order.SecondOrderNumber,
		order.IsSecondPayment, order.OriginalOrderID, order.PaymentMethod,
		order.PaymentMethodTitle).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, order *domain.Order) error {
	query := `
        UPDATE orders
        SET status = $1, payment_type = $2, credit_used = $3, remaining_amount = $4,
            paid_via_credit = $5, credit_paid = $6, second_payment_done = $7,
            second_order_number = $8, payment_method = $9, payment_method_title = $10
        WHERE id = $11
    `
	_, err := r.db.Exec(ctx, query,
		order.Status, order.PaymentType, order.CreditUsed, order.RemainingAmount,
		order.PaidViaCredit, order.CreditPaid, order.SecondPaymentDone,
		order.SecondOrderNumber, order.PaymentMethod, order.PaymentMethodTitle, order.ID)
	if err != nil {
		zap.L().Error("failed to update order", zap.Error(err))
		return err
	}
	return nil
}

// FindSplitPending returns split orders whose second payment leg has been
// created but not yet confirmed, for the settlement watcher.
func (r *Repository) FindSplitPending(ctx context.Context, limit uint32) ([]domain.Order, error) {
	query := `
        SELECT ` + orderColumns + `
        FROM orders
        WHERE payment_type = 'split'
          AND second_order_number <> ''
          AND second_payment_done = FALSE
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get split orders for settlement", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			zap.L().Error("can't scan order row", zap.Error(err))
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arta-commerce/bajetpay/internal/config"
	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1

	statusPaid    = "PAID"
	statusPending = "PENDING"
	statusFailed  = "FAILED"
)

var watchedOrders sync.Map

type Response struct {
	Order  string `json:"order"`
	Status string `json:"status"`
}

type OrderRepo interface {
	FindSplitPending(ctx context.Context, limit uint32) ([]domain.Order, error)
}

type Settler interface {
	OrderStatusChanged(ctx context.Context, orderNumber, status string) error
}

// Watcher polls the payment provider for second-leg orders of split payments
// that have not settled yet. Once the provider reports the leg paid, the
// settler completes the original order.
type Watcher struct {
	url            string
	orderRepo      OrderRepo
	settler        Settler
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, orderRepo OrderRepo, settler Settler, client clients.HTTPClientI) *Watcher {
	return &Watcher{
		url:            cfg.GatewayAddress,
		orderRepo:      orderRepo,
		settler:        settler,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (w *Watcher) Start(ctx context.Context) {
	zap.L().Info("Settlement watcher started")
	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	ticker := time.NewTicker(w.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping settlement watcher")
			return
		case <-ticker.C:
			w.processOrders(ctx)
		}
	}
}

func (w *Watcher) processOrders(ctx context.Context) {
	orders, err := w.orderRepo.FindSplitPending(ctx, atomic.LoadUint32(&w.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending split orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := watchedOrders.LoadOrStore(order.SecondOrderNumber, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := w.workerPool.AddTask(ctx, func() error {
				defer watchedOrders.Delete(order.SecondOrderNumber)
				return w.handleOrder(ctx, order)
			})
			if err != nil {
				watchedOrders.Delete(order.SecondOrderNumber)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error watching split orders", zap.Error(err))
	}
}

func (w *Watcher) handleOrder(ctx context.Context, order domain.Order) error {
	url := w.url + "/api/payments/" + order.SecondOrderNumber
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = w.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to check payment %s after %d retries: %w", order.SecondOrderNumber, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return w.handleRateLimit(order, respHeaders, attempt)
			case http.StatusNoContent, http.StatusNotFound:
				zap.L().Warn("Payment not known to provider yet",
					zap.String("orderNumber", order.SecondOrderNumber), zap.Int("attempt", attempt))
				return nil
			case http.StatusOK:
				return w.processPaymentStatus(ctx, order, respBody)
			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode),
					zap.String("orderNumber", order.SecondOrderNumber))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (w *Watcher) processPaymentStatus(ctx context.Context, order domain.Order, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Order != order.SecondOrderNumber {
		return fmt.Errorf("order number mismatch: expected %s, got %s", order.SecondOrderNumber, response.Order)
	}

	switch response.Status {
	case statusPaid:
		if err := w.settler.OrderStatusChanged(ctx, order.SecondOrderNumber, domain.OrderStatusProcessing); err != nil {
			return fmt.Errorf("failed to settle second payment for order %s: %w", order.OrderNumber, err)
		}
		zap.L().Info("Second payment confirmed",
			zap.String("orderNumber", order.OrderNumber),
			zap.String("secondOrderNumber", order.SecondOrderNumber))
	case statusPending:
		zap.L().Info("Second payment still pending", zap.String("orderNumber", order.SecondOrderNumber))
	case statusFailed:
		zap.L().Warn("Second payment failed at provider", zap.String("orderNumber", order.SecondOrderNumber))
	default:
		zap.L().Warn("Unrecognized payment status",
			zap.String("orderNumber", order.SecondOrderNumber), zap.String("status", response.Status))
	}
	return nil
}

func (w *Watcher) handleRateLimit(order domain.Order, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("orderNumber", order.SecondOrderNumber),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}

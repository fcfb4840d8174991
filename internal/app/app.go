package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/arta-commerce/bajetpay/internal/config"
	"github.com/arta-commerce/bajetpay/internal/gateway"
	"github.com/arta-commerce/bajetpay/internal/handlers"
	"github.com/arta-commerce/bajetpay/internal/pg"
	"github.com/arta-commerce/bajetpay/internal/repo"
	"github.com/arta-commerce/bajetpay/internal/service"
	"github.com/arta-commerce/bajetpay/internal/session"
	"github.com/arta-commerce/bajetpay/internal/settlement"
	"github.com/arta-commerce/bajetpay/pkg/clients"
	"github.com/arta-commerce/bajetpay/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	watcher *settlement.Watcher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	rdb := session.NewClient(cfg.RedisAddress)
	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().Error("redis ping failed: ", zap.Error(err))
		return fmt.Errorf("can't connect to redis: %w", err)
	}
	sessions := session.New(rdb)

	registry := buildRegistry(cfg)

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, sessions, registry)
	a.api = handlers.New(a.srv)
	a.watcher = settlement.New(cfg, a.repo.OrderRepo, a.srv.CheckoutService, clients.NewHTTPClient())

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSettlementWatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func buildRegistry(cfg *config.Config) *gateway.Registry {
	registry := gateway.NewRegistry()
	registry.Register(gateway.NewCreditGateway())

	client := clients.NewHTTPClient()
	for _, id := range cfg.GatewayIDs() {
		registry.Register(gateway.NewExternalGateway(id, gatewayTitle(id), cfg.GatewayAddress, client))
	}
	return registry
}

func gatewayTitle(id string) string {
	if id == "" {
		return id
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startSettlementWatcher(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.watcher.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}

package service

import (
	"testing"

	"github.com/arta-commerce/bajetpay/internal/gateway"
	"github.com/arta-commerce/bajetpay/internal/pg"
	"github.com/arta-commerce/bajetpay/internal/repo"
	orderrepo "github.com/arta-commerce/bajetpay/internal/repo/order-repo"
	"github.com/arta-commerce/bajetpay/internal/service/authservice"
	"github.com/arta-commerce/bajetpay/internal/service/creditservice"
	"github.com/arta-commerce/bajetpay/internal/service/gatewayservice"
	"github.com/arta-commerce/bajetpay/internal/session"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := &repo.Repositories{
		UserRepo:     authservice.NewMockRepo(ctrl),
		CreditRepo:   creditservice.NewMockCreditRepo(ctrl),
		OrderRepo:    orderrepo.New(mockDB),
		SettingsRepo: gatewayservice.NewMockSettingsRepo(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	sessions := session.New(nil)
	registry := gateway.NewRegistry()

	services := New(repos, txManager, sessions, registry)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CreditService)
	assert.NotNil(t, services.SaleTypeService)
	assert.NotNil(t, services.PricingService)
	assert.NotNil(t, services.GatewayService)
	assert.NotNil(t, services.CheckoutService)
	assert.NotNil(t, services.Sessions)
}

package service

import (
	"github.com/arta-commerce/bajetpay/internal/gateway"
	"github.com/arta-commerce/bajetpay/internal/pg"
	"github.com/arta-commerce/bajetpay/internal/repo"
	"github.com/arta-commerce/bajetpay/internal/service/authservice"
	"github.com/arta-commerce/bajetpay/internal/service/checkoutservice"
	"github.com/arta-commerce/bajetpay/internal/service/creditservice"
	"github.com/arta-commerce/bajetpay/internal/service/gatewayservice"
	"github.com/arta-commerce/bajetpay/internal/service/pricingservice"
	"github.com/arta-commerce/bajetpay/internal/service/saletypeservice"
	"github.com/arta-commerce/bajetpay/internal/session"
	pkgauth "github.com/arta-commerce/bajetpay/pkg/auth"
)

type Services struct {
	AuthService     *authservice.Service
	CreditService   *creditservice.Service
	SaleTypeService *saletypeservice.Service
	PricingService  *pricingservice.Service
	GatewayService  *gatewayservice.Service
	CheckoutService *checkoutservice.Service
	Sessions        *session.Store
}

func New(repos *repo.Repositories, txManager pg.TXManager, sessions *session.Store, registry *gateway.Registry) *Services {
	creditService := creditservice.New(repos.CreditRepo, txManager)
	authService := authservice.New(repos.UserRepo, creditService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	saleTypeService := saletypeservice.New(sessions)
	pricingService := pricingservice.New(repos.SettingsRepo)
	gatewayService := gatewayservice.New(registry, repos.SettingsRepo)
	checkoutService := checkoutservice.New(creditService, repos.OrderRepo, sessions, pricingService, gatewayService)

	return &Services{
		AuthService:     authService,
		CreditService:   creditService,
		SaleTypeService: saleTypeService,
		PricingService:  pricingService,
		GatewayService:  gatewayService,
		CheckoutService: checkoutService,
		Sessions:        sessions,
	}
}

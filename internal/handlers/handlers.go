package handlers

import (
	"net/http"

	_ "github.com/arta-commerce/bajetpay/docs"
	authhandlers "github.com/arta-commerce/bajetpay/internal/handlers/auth"
	carthandlers "github.com/arta-commerce/bajetpay/internal/handlers/cart"
	checkouthandlers "github.com/arta-commerce/bajetpay/internal/handlers/checkout"
	credithandlers "github.com/arta-commerce/bajetpay/internal/handlers/credit"
	ordershandlers "github.com/arta-commerce/bajetpay/internal/handlers/orders"
	saletypehandlers "github.com/arta-commerce/bajetpay/internal/handlers/saletype"
	settingshandlers "github.com/arta-commerce/bajetpay/internal/handlers/settings"
	"github.com/arta-commerce/bajetpay/internal/service"
	"github.com/arta-commerce/bajetpay/internal/session"
	"github.com/arta-commerce/bajetpay/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CreditHandler interface {
	GetCredit(w http.ResponseWriter, r *http.Request)
	UpdateCredit(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type SaleTypeHandler interface {
	GetSaleType(w http.ResponseWriter, r *http.Request)
	UpdateSaleType(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	UpdateCart(w http.ResponseWriter, r *http.Request)
	ClearCart(w http.ResponseWriter, r *http.Request)
}

type CheckoutHandler interface {
	AdjustPrice(w http.ResponseWriter, r *http.Request)
	GetFees(w http.ResponseWriter, r *http.Request)
	GetGateways(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	PaymentComplete(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type SettingsHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	CreditHandler   CreditHandler
	SaleTypeHandler SaleTypeHandler
	CartHandler     CartHandler
	CheckoutHandler CheckoutHandler
	OrderHandler    OrderHandler
	SettingsHandler SettingsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		CreditHandler:   credithandlers.New(s.CreditService),
		SaleTypeHandler: saletypehandlers.New(s.SaleTypeService),
		CartHandler:     carthandlers.New(s.Sessions),
		CheckoutHandler: checkouthandlers.New(s.CheckoutService, s.SaleTypeService, s.PricingService, s.GatewayService),
		OrderHandler:    ordershandlers.New(s.CheckoutService),
		SettingsHandler: settingshandlers.New(s.GatewayService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		session.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/hooks/price", h.CheckoutHandler.AdjustPrice)

		r.Route("/cart", func(r chi.Router) {
			r.Put("/", h.CartHandler.UpdateCart)
			r.Delete("/", h.CartHandler.ClearCart)
		})

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Route("/sale-type", func(r chi.Router) {
				r.Get("/", h.SaleTypeHandler.GetSaleType)
				r.Post("/", h.SaleTypeHandler.UpdateSaleType)
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/credit", h.CreditHandler.GetCredit)
				r.Get("/orders", h.OrderHandler.GetOrders)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", h.CheckoutHandler.Submit)
				r.Get("/fees", h.CheckoutHandler.GetFees)
				r.Get("/gateways", h.CheckoutHandler.GetGateways)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.CreateOrder)
				r.Post("/{number}/payment-complete", h.OrderHandler.PaymentComplete)
				r.Post("/{number}/status", h.OrderHandler.UpdateStatus)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
			r.Post("/credit", h.CreditHandler.UpdateCredit)
			r.Get("/credit/{userID}/history", h.CreditHandler.GetHistory)
			r.Get("/settings", h.SettingsHandler.GetSettings)
			r.Put("/settings", h.SettingsHandler.UpdateSettings)
		})
	})

	return r
}

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/arta-commerce/bajetpay/docs"
	"github.com/arta-commerce/bajetpay/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	h := New(&service.Services{})
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.AuthHandler)
	assert.NotNil(t, h.CreditHandler)
	assert.NotNil(t, h.SaleTypeHandler)
	assert.NotNil(t, h.CartHandler)
	assert.NotNil(t, h.CheckoutHandler)
	assert.NotNil(t, h.OrderHandler)
	assert.NotNil(t, h.SettingsHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockCreditHandler := NewMockCreditHandler(ctrl)
	mockSaleTypeHandler := NewMockSaleTypeHandler(ctrl)
	mockCartHandler := NewMockCartHandler(ctrl)
	mockCheckoutHandler := NewMockCheckoutHandler(ctrl)
	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockSettingsHandler := NewMockSettingsHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockSaleTypeHandler.EXPECT().GetSaleType(gomock.Any(), gomock.Any()).AnyTimes()
	mockSaleTypeHandler.EXPECT().UpdateSaleType(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().UpdateCart(gomock.Any(), gomock.Any()).AnyTimes()
	mockCartHandler.EXPECT().ClearCart(gomock.Any(), gomock.Any()).AnyTimes()
	mockCheckoutHandler.EXPECT().AdjustPrice(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		CreditHandler:   mockCreditHandler,
		SaleTypeHandler: mockSaleTypeHandler,
		CartHandler:     mockCartHandler,
		CheckoutHandler: mockCheckoutHandler,
		OrderHandler:    mockOrderHandler,
		SettingsHandler: mockSettingsHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/hooks/price", http.StatusOK},
		{"PUT", "/api/cart", http.StatusOK},
		{"DELETE", "/api/cart", http.StatusOK},
		{"POST", "/api/user/register", http.StatusOK},
		{"POST", "/api/user/login", http.StatusOK},
		{"GET", "/api/user/sale-type", http.StatusOK},
		{"POST", "/api/user/sale-type", http.StatusOK},
		{"GET", "/api/user/credit", http.StatusUnauthorized},
		{"GET", "/api/user/orders", http.StatusUnauthorized},
		{"POST", "/api/checkout", http.StatusUnauthorized},
		{"GET", "/api/checkout/fees", http.StatusUnauthorized},
		{"GET", "/api/checkout/gateways", http.StatusUnauthorized},
		{"POST", "/api/orders", http.StatusUnauthorized},
		{"POST", "/api/orders/2377225624/payment-complete", http.StatusUnauthorized},
		{"POST", "/api/orders/2377225624/status", http.StatusUnauthorized},
		{"GET", "/api/admin/settings", http.StatusUnauthorized},
		{"PUT", "/api/admin/settings", http.StatusUnauthorized},
		{"POST", "/api/admin/credit", http.StatusUnauthorized},
		{"GET", "/api/admin/credit/1/history", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/gateway"
	"github.com/arta-commerce/bajetpay/internal/service/checkoutservice"
	"github.com/arta-commerce/bajetpay/internal/session"
	"github.com/arta-commerce/bajetpay/pkg/auth"
	"github.com/arta-commerce/bajetpay/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	checkoutService *MockCheckoutService
	saleTypeService *MockSaleTypeService
	pricingService  *MockPricingService
	gatewayService  *MockGatewayService
}

func NewMock(t *testing.T) (*CheckoutHandler, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		checkoutService: NewMockCheckoutService(ctrl),
		saleTypeService: NewMockSaleTypeService(ctrl),
		pricingService:  NewMockPricingService(ctrl),
		gatewayService:  NewMockGatewayService(ctrl),
	}
	handler := New(m.checkoutService, m.saleTypeService, m.pricingService, m.gatewayService)
	defer ctrl.Finish()
	return handler, m
}

type stubGateway struct {
	id    string
	title string
}

func (g stubGateway) ID() string    { return g.id }
func (g stubGateway) Title() string { return g.title }
func (g stubGateway) Enabled() bool { return true }
func (g stubGateway) ProcessPayment(context.Context, *domain.Order) (*gateway.PaymentResult, error) {
	return &gateway.PaymentResult{Success: true}, nil
}

func withUserID(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func TestAdjustPriceHandler(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Bajet mode applies markup",
			body: `{"product_id":101,"base_price":250}`,
			prepareMock: func() {
				m.saleTypeService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.SaleTypeBajet)
				m.pricingService.EXPECT().Adjust(gomock.Any(), 250.0, domain.SaleTypeBajet).Return(280.0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"product_id":101,"price":280,"sale_type":"bajet"}`,
		},
		{
			name: "Normal mode leaves price untouched",
			body: `{"product_id":101,"base_price":250}`,
			prepareMock: func() {
				m.saleTypeService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.SaleTypeNormal)
				m.pricingService.EXPECT().Adjust(gomock.Any(), 250.0, domain.SaleTypeNormal).Return(250.0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"product_id":101,"price":250,"sale_type":"normal"}`,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Missing base price",
			body: `{"product_id":101}`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/hooks/price", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.AdjustPrice(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGetFeesHandler(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Credit fee present",
			prepareMock: func() {
				m.saleTypeService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.SaleTypeBajet)
				m.checkoutService.EXPECT().
					CartTotals(gomock.Any(), 1, gomock.Any(), domain.SaleTypeBajet).
					Return(&checkoutservice.Totals{Subtotal: 672, CreditFee: -300, Total: 372}, nil)
				m.checkoutService.EXPECT().
					CartFee(gomock.Any(), 1, gomock.Any(), domain.SaleTypeBajet).
					Return(&checkoutservice.FeeLine{Label: "Bajet credit", Amount: -300}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"subtotal":672,"credit_fee":-300,"total":372,"fees":[{"label":"Bajet credit","amount":-300}]}`,
		},
		{
			name: "No credit to apply",
			prepareMock: func() {
				m.saleTypeService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.SaleTypeNormal)
				m.checkoutService.EXPECT().
					CartTotals(gomock.Any(), 1, gomock.Any(), domain.SaleTypeNormal).
					Return(&checkoutservice.Totals{Subtotal: 600, CreditFee: 0, Total: 600}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"subtotal":600,"credit_fee":0,"total":600}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUserID(httptest.NewRequest("GET", "/api/checkout/fees", nil), 1)
			rr := httptest.NewRecorder()

			handler.GetFees(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestGetGatewaysHandler(t *testing.T) {
	handler, m := NewMock(t)

	t.Run("Lists gateways for bajet mode", func(t *testing.T) {
		m.saleTypeService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.SaleTypeBajet)
		m.gatewayService.EXPECT().
			AvailableForCheckout(gomock.Any(), domain.SaleTypeBajet).
			Return([]gateway.Gateway{
				stubGateway{id: "bajet_credit", title: "Bajet credit"},
				stubGateway{id: "mellat", title: "Mellat"},
			}, nil)

		req := httptest.NewRequest("GET", "/api/checkout/gateways", nil)
		rr := httptest.NewRecorder()

		handler.GetGateways(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":"bajet_credit","title":"Bajet credit"},{"id":"mellat","title":"Mellat"}]`, rr.Body.String())
	})

	t.Run("Empty allow-list result is surfaced as-is", func(t *testing.T) {
		m.saleTypeService.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.SaleTypeNormal)
		m.gatewayService.EXPECT().
			AvailableForCheckout(gomock.Any(), domain.SaleTypeNormal).
			Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/checkout/gateways", nil)
		rr := httptest.NewRecorder()

		handler.GetGateways(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestSubmitHandler(t *testing.T) {
	handler, m := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Split decision",
			body: `{"sale_type":"bajet"}`,
			prepareMock: func() {
				m.saleTypeService.EXPECT().Set(gomock.Any(), gomock.Any(), "bajet").Return(domain.SaleTypeBajet, nil)
				m.checkoutService.EXPECT().
					Submit(gomock.Any(), 1, gomock.Any(), domain.SaleTypeBajet).
					Return(&checkoutservice.Decision{
						PaymentType:     domain.PaymentTypeSplit,
						Total:           672,
						CreditUsed:      300,
						RemainingAmount: 372,
					}, nil)
				m.gatewayService.EXPECT().
					AvailableForCheckout(gomock.Any(), domain.SaleTypeBajet).
					Return([]gateway.Gateway{stubGateway{id: "bajet_credit", title: "Bajet credit"}}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Empty cart",
			body: `{"sale_type":"bajet"}`,
			prepareMock: func() {
				m.saleTypeService.EXPECT().Set(gomock.Any(), gomock.Any(), "bajet").Return(domain.SaleTypeBajet, nil)
				m.checkoutService.EXPECT().
					Submit(gomock.Any(), 1, gomock.Any(), domain.SaleTypeBajet).
					Return(nil, checkoutservice.ErrEmptyCart)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: checkoutservice.ErrEmptyCart.Error(),
		},
		{
			name: "Invalid sale type",
			body: `{"sale_type":"wholesale"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid sale type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUserID(httptest.NewRequest("POST", "/api/checkout", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.Submit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusOK {
				var found bool
				for _, c := range rr.Result().Cookies() {
					if c.Name == session.SaleTypeCookieName {
						found = true
					}
				}
				assert.True(t, found)
			}
		})
	}
}

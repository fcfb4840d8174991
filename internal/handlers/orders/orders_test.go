package orders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/service/checkoutservice"
	"github.com/arta-commerce/bajetpay/pkg/auth"
	"github.com/arta-commerce/bajetpay/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*OrderHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withUserID(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func withOrderNumber(req *http.Request, number string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("number", number)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateOrderHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Registers order with parked decision",
			body: `{"order":"2377225624","total":672}`,
			prepareMock: func() {
				service.EXPECT().
					OrderCreated(gomock.Any(), 1, gomock.Any(), "2377225624", 672.0).
					Return(&domain.Order{
						OrderNumber: "2377225624",
						Status:      domain.OrderStatusNew,
						Total:       672,
						SaleType:    string(domain.SaleTypeBajet),
						PaymentType: domain.PaymentTypeSplit,
						CreatedAt:   now,
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Invalid order number",
			body: `{"order":"2377225625","total":672}`,
			prepareMock: func() {
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Missing total",
			body: `{"order":"2377225624"}`,
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service error",
			body: `{"order":"2377225624","total":672}`,
			prepareMock: func() {
				service.EXPECT().
					OrderCreated(gomock.Any(), 1, gomock.Any(), "2377225624", 672.0).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUserID(httptest.NewRequest("POST", "/api/orders", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.CreateOrder(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Returns orders",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 1).Return([]domain.Order{
					{OrderNumber: "2377225624", Status: domain.OrderStatusCompleted, CreatedAt: now},
					{OrderNumber: "12345678903", Status: domain.OrderStatusNew, CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No orders",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().GetOrders(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUserID(httptest.NewRequest("GET", "/api/user/orders", nil), 1)
			rr := httptest.NewRecorder()

			handler.GetOrders(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedLen > 0 {
				var resp []json.RawMessage
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Len(t, resp, tt.expectedLen)
			}
		})
	}
}

func TestPaymentCompleteHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *checkoutservice.PaymentOutcome
	}{
		{
			name: "Split settlement returns second order and redirect",
			prepareMock: func() {
				service.EXPECT().
					PaymentComplete(gomock.Any(), "2377225624").
					Return(&checkoutservice.PaymentOutcome{
						SecondOrderNumber: "12345678903",
						RedirectURL:       "http://pay.example/redirect",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &checkoutservice.PaymentOutcome{
				SecondOrderNumber: "12345678903",
				RedirectURL:       "http://pay.example/redirect",
			},
		},
		{
			name: "Order not found",
			prepareMock: func() {
				service.EXPECT().
					PaymentComplete(gomock.Any(), "2377225624").
					Return(nil, checkoutservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().
					PaymentComplete(gomock.Any(), "2377225624").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withOrderNumber(withUserID(httptest.NewRequest("POST", "/api/orders/2377225624/payment-complete", nil), 1), "2377225624")
			rr := httptest.NewRecorder()

			handler.PaymentComplete(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp struct {
					SecondOrderNumber string `json:"second_order_number"`
					RedirectURL       string `json:"redirect_url"`
				}
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedBody.SecondOrderNumber, resp.SecondOrderNumber)
				assert.Equal(t, tt.expectedBody.RedirectURL, resp.RedirectURL)
			}
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Status recorded",
			body: `{"status":"processing"}`,
			prepareMock: func() {
				service.EXPECT().
					OrderStatusChanged(gomock.Any(), "12345678903", "processing").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown order",
			body: `{"status":"processing"}`,
			prepareMock: func() {
				service.EXPECT().
					OrderStatusChanged(gomock.Any(), "12345678903", "processing").
					Return(checkoutservice.ErrOrderNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: checkoutservice.ErrOrderNotFound.Error(),
		},
		{
			name: "Invalid status",
			body: `{"status":"shipped"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withOrderNumber(withUserID(httptest.NewRequest("POST", "/api/orders/12345678903/status", bytes.NewReader([]byte(tt.body))), 1), "12345678903")
			rr := httptest.NewRecorder()

			handler.UpdateStatus(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

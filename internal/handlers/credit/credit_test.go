package credit

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
	"github.com/arta-commerce/bajetpay/internal/service/creditservice"
	"github.com/arta-commerce/bajetpay/pkg/auth"
	"github.com/arta-commerce/bajetpay/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CreditHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withUserID(req *http.Request, userID int) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, userID))
}

func TestGetCreditHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Returns balance",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(1000.0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"balance":1000}`,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().GetBalance(gomock.Any(), 1).Return(0.0, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUserID(httptest.NewRequest("GET", "/api/user/credit", nil), 1)
			rr := httptest.NewRecorder()

			handler.GetCredit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestUpdateCreditHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Increase",
			body: `{"user_id":42,"amount":500,"operation":"increase","reason":"manual top-up"}`,
			prepareMock: func() {
				service.EXPECT().
					Increase(gomock.Any(), 42, 500.0, "manual top-up", 1).
					Return(&domain.UserCredit{UserID: 42, Balance: 1500}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Decrease",
			body: `{"user_id":42,"amount":200,"operation":"decrease","reason":"correction"}`,
			prepareMock: func() {
				service.EXPECT().
					Decrease(gomock.Any(), 42, 200.0, "correction", 1).
					Return(&domain.UserCredit{UserID: 42, Balance: 1300}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Decrease below zero",
			body: `{"user_id":42,"amount":5000,"operation":"decrease"}`,
			prepareMock: func() {
				service.EXPECT().
					Decrease(gomock.Any(), 42, 5000.0, "", 1).
					Return(nil, creditservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "credit cannot become negative",
		},
		{
			name: "Invalid operation",
			body: `{"user_id":42,"amount":500,"operation":"transfer"}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Invalid request body",
			body: `{invalid json`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUserID(httptest.NewRequest("POST", "/api/admin/credit", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.UpdateCredit(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

func TestGetHistoryHandler(t *testing.T) {
	handler, service := NewMock(t)
	now := time.Now()

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Returns history",
			userID: "42",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 42, 0).Return([]domain.CreditHistoryEntry{
					{UserID: 42, PreviousBalance: 1000, NewBalance: 300, Delta: -700, Kind: domain.ChangeKindDecrease, CreatedAt: now},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Empty history",
			userID: "42",
			prepareMock: func() {
				service.EXPECT().GetHistory(gomock.Any(), 42, 0).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Invalid user id",
			userID: "abc",
			prepareMock: func() {
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUserID(httptest.NewRequest("GET", "/api/admin/credit/"+tt.userID+"/history", nil), 1)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			rr := httptest.NewRecorder()

			handler.GetHistory(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

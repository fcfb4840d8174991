package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/service/gatewayservice"
	"github.com/arta-commerce/bajetpay/pkg/utils"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*SettingsHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetSettingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns settings", func(t *testing.T) {
		service.EXPECT().GetSettings(gomock.Any()).Return(&domain.GatewaySettings{
			BajetGateways:        []string{"bajet_credit", "mellat"},
			NormalGateways:       []string{"mellat"},
			DefaultSecondGateway: "mellat",
			MarkupPercent:        12,
		}, nil)

		req := httptest.NewRequest("GET", "/api/admin/settings", nil)
		rr := httptest.NewRecorder()

		handler.GetSettings(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "mellat", resp["default_second_gateway"])
		assert.Equal(t, 12.0, resp["markup_percent"])
	})

	t.Run("Service error", func(t *testing.T) {
		service.EXPECT().GetSettings(gomock.Any()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest("GET", "/api/admin/settings", nil)
		rr := httptest.NewRecorder()

		handler.GetSettings(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestUpdateSettingsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Settings updated",
			body: `{"bajet_gateways":["bajet_credit","mellat"],"normal_gateways":["mellat"],"default_second_gateway":"mellat","markup_percent":15}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateSettings(gomock.Any(), &domain.GatewaySettings{
						BajetGateways:        []string{"bajet_credit", "mellat"},
						NormalGateways:       []string{"mellat"},
						DefaultSecondGateway: "mellat",
						MarkupPercent:        15,
					}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Markup percent out of range",
			body: `{"default_second_gateway":"mellat","markup_percent":150}`,
			prepareMock: func() {
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid settings",
		},
		{
			name: "Markup rejected by service",
			body: `{"default_second_gateway":"mellat","markup_percent":15}`,
			prepareMock: func() {
				service.EXPECT().
					UpdateSettings(gomock.Any(), gomock.Any()).
					Return(gatewayservice.ErrInvalidMarkupPercent)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: gatewayservice.ErrInvalidMarkupPercent.Error(),
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

			req := httptest.NewRequest("PUT", "/api/admin/settings", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.UpdateSettings(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
			}
		})
	}
}

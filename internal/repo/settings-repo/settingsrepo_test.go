package settingsrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Get(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.GatewaySettings
	}{
		{
			name: "Stored settings",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"bajet_gateways", "normal_gateways", "default_second_gateway", "markup_percent"}).
					AddRow([]string{"bajet_credit", "mellat"}, []string{"mellat", "zarinpal"}, "zarinpal", 15.0)
				mock.ExpectQuery(`SELECT bajet_gateways, normal_gateways, default_second_gateway, markup_percent\s+FROM gateway_settings\s+WHERE id = 1`).
					WillReturnRows(rows)
			},
			result: &domain.GatewaySettings{
				BajetGateways:        []string{"bajet_credit", "mellat"},
				NormalGateways:       []string{"mellat", "zarinpal"},
				DefaultSecondGateway: "zarinpal",
				MarkupPercent:        15,
			},
		},
		{
			name: "Missing record falls back to defaults",
			mockSetup: func() {
				mock.ExpectQuery(`FROM gateway_settings\s+WHERE id = 1`).
					WillReturnError(pgx.ErrNoRows)
			},
			result: &domain.GatewaySettings{DefaultSecondGateway: "mellat", MarkupPercent: 12},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`FROM gateway_settings\s+WHERE id = 1`).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Get(context.Background())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	settings := &domain.GatewaySettings{
		BajetGateways:        []string{"bajet_credit"},
		NormalGateways:       []string{"mellat"},
		DefaultSecondGateway: "mellat",
		MarkupPercent:        12,
	}

	t.Run("Upserts the single record", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO gateway_settings \(id, bajet_gateways, normal_gateways, default_second_gateway, markup_percent\)`).
			WithArgs(settings.BajetGateways, settings.NormalGateways, settings.DefaultSecondGateway, settings.MarkupPercent).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := repo.Update(context.Background(), settings)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO gateway_settings`).
			WithArgs(settings.BajetGateways, settings.NormalGateways, settings.DefaultSecondGateway, settings.MarkupPercent).
			WillReturnError(errors.New("database error"))

		err := repo.Update(context.Background(), settings)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

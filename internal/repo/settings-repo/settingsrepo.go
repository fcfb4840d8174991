package settingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/pg"
	"go.uber.org/zap"
)

// Gateway settings are a single global record, read on nearly every checkout
// request and written only through the admin settings endpoint.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Get(ctx context.Context) (*domain.GatewaySettings, error) {
	query := `
        SELECT bajet_gateways, normal_gateways, default_second_gateway, markup_percent
        FROM gateway_settings
        WHERE id = 1
    `
	var s domain.GatewaySettings
	err := r.db.QueryRow(ctx, query).
		Scan(&s.BajetGateways, &s.NormalGateways, &s.DefaultSecondGateway, &s.MarkupPercent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.GatewaySettings{DefaultSecondGateway: "mellat", MarkupPercent: 12}, nil
		}
		zap.L().Error("failed to get gateway settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}

func (r *Repository) Update(ctx context.Context, s *domain.GatewaySettings) error {
	query := `
        INSERT INTO gateway_settings (id, bajet_gateways, normal_gateways, default_second_gateway, markup_percent)
        VALUES (1, $1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE
        SET bajet_gateways = EXCLUDED.bajet_gateways,
            normal_gateways = EXCLUDED.normal_gateways,
            default_second_gateway = EXCLUDED.default_second_gateway,
            markup_percent = EXCLUDED.markup_percent
    `
	_, err := r.db.Exec(ctx, query, s.BajetGateways, s.NormalGateways, s.DefaultSecondGateway, s.MarkupPercent)
	if err != nil {
		zap.L().Error("failed to update gateway settings", zap.Error(err))
		return err
	}
	return nil
}

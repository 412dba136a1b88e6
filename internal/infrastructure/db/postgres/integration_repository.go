package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

type IntegrationRepository struct {
	pool *pgxpool.Pool
}

func NewIntegrationRepository(pool *pgxpool.Pool) *IntegrationRepository {
	return &IntegrationRepository{pool: pool}
}

func (r *IntegrationRepository) Create(ctx context.Context, integration *domain.Integration) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO integrations (id, user_id, name, platform, currency, upstream_token, hook_secret, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		integration.ID, integration.UserID, integration.Name, integration.Platform,
		integration.Currency, integration.UpstreamToken, integration.HookSecret, integration.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert integration: %w", err)
	}
	return nil
}

func (r *IntegrationRepository) FindByID(ctx context.Context, id string) (*domain.Integration, error) {
	var in domain.Integration
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, name, platform, currency, upstream_token, hook_secret, created_at
		 FROM integrations WHERE id = $1`,
		id,
	).Scan(&in.ID, &in.UserID, &in.Name, &in.Platform, &in.Currency, &in.UpstreamToken, &in.HookSecret, &in.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrIntegrationNotFound
		}
		return nil, fmt.Errorf("find integration: %w", err)
	}
	return &in, nil
}

// ListByUser returns the user's integrations in creation order.
func (r *IntegrationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Integration, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, name, platform, currency, upstream_token, hook_secret, created_at
		 FROM integrations WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	defer rows.Close()

	var out []domain.Integration
	for rows.Next() {
		var in domain.Integration
		if err := rows.Scan(&in.ID, &in.UserID, &in.Name, &in.Platform, &in.Currency,
			&in.UpstreamToken, &in.HookSecret, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan integration: %w", err)
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	return out, nil
}

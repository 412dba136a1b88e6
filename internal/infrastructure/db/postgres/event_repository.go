package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

// EventRepository implements the append-only delivery ledger on PostgreSQL.
// Every operation is a single statement; no multi-step transaction spans an
// ingress call.
type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Insert(ctx context.Context, event *domain.DeliveryEvent) (int64, error) {
	var errDetail *string
	if event.Error != "" {
		errDetail = &event.Error
	}

	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO events (integration_id, status, upstream_status, error, received_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		event.IntegrationID, string(event.Status), event.UpstreamStatus, errDetail, event.ReceivedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) ListRecent(ctx context.Context, integrationID string, limit int) ([]domain.DeliveryEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, integration_id, status, upstream_status, error, received_at
		 FROM events WHERE integration_id = $1 ORDER BY received_at DESC LIMIT $2`,
		integrationID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []domain.DeliveryEvent
	for rows.Next() {
		var (
			e         domain.DeliveryEvent
			status    string
			errDetail *string
		)
		if err := rows.Scan(&e.ID, &e.IntegrationID, &status, &e.UpstreamStatus, &errDetail, &e.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Status = domain.EventStatus(status)
		if errDetail != nil {
			e.Error = *errDetail
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return out, nil
}

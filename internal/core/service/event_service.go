package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/utmhub/conversion-relay/internal/api/metrics"
	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

const maxEventPage = 50

type eventService struct {
	events       ports.EventRepository
	integrations ports.IntegrationRepository
	log          zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(events ports.EventRepository, integrations ports.IntegrationRepository, log zerolog.Logger) ports.EventService {
	return &eventService{events: events, integrations: integrations, log: log}
}

// Append writes one immutable ledger row. The received timestamp is
// assigned here, at ingress; concurrent appends for the same integration
// may interleave freely.
func (s *eventService) Append(ctx context.Context, integrationID string, status domain.EventStatus, upstreamStatus *int, errDetail string) (int64, error) {
	event := &domain.DeliveryEvent{
		IntegrationID:  integrationID,
		Status:         status,
		UpstreamStatus: upstreamStatus,
		Error:          errDetail,
		ReceivedAt:     time.Now().UTC(),
	}

	id, err := s.events.Insert(ctx, event)
	if err != nil {
		return 0, fmt.Errorf("append event: %w", err)
	}

	metrics.EventsAppendedTotal.WithLabelValues(string(status)).Inc()
	return id, nil
}

// ListRecent returns the newest events for an integration owned by ownerID.
// A foreign integration is reported as not found rather than forbidden, so
// the endpoint does not confirm which identifiers exist.
func (s *eventService) ListRecent(ctx context.Context, ownerID, integrationID string, limit int) ([]domain.DeliveryEvent, error) {
	integration, err := s.integrations.FindByID(ctx, integrationID)
	if err != nil {
		return nil, err
	}
	if integration.UserID != ownerID {
		return nil, domain.ErrIntegrationNotFound
	}

	if limit <= 0 || limit > maxEventPage {
		limit = maxEventPage
	}
	return s.events.ListRecent(ctx, integrationID, limit)
}

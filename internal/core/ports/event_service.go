package ports

import (
	"context"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

type EventService interface {
	Append(ctx context.Context, integrationID string, status domain.EventStatus, upstreamStatus *int, errDetail string) (int64, error)
	// ListRecent returns up to limit events for an integration owned by
	// ownerID, newest first. Unknown or foreign integrations report not found.
	ListRecent(ctx context.Context, ownerID, integrationID string, limit int) ([]domain.DeliveryEvent, error)
}

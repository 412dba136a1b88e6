package ports

import (
	"context"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

// EventRepository is the append-only delivery ledger. Rows are inserted and
// queried most-recent-first; there is no update path.
type EventRepository interface {
	Insert(ctx context.Context, event *domain.DeliveryEvent) (int64, error)
	ListRecent(ctx context.Context, integrationID string, limit int) ([]domain.DeliveryEvent, error)
}

package ports

import (
	"context"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

// IntegrationRepository defines the interface for integration persistence.
// There is no update or delete: integration records are immutable once
// created.
type IntegrationRepository interface {
	Create(ctx context.Context, integration *domain.Integration) error
	FindByID(ctx context.Context, id string) (*domain.Integration, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Integration, error)
}

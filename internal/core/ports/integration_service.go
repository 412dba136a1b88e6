package ports

import (
	"context"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

// CreateIntegrationInput carries the user-supplied integration attributes.
// The hook secret is never part of the input; it is generated server-side.
type CreateIntegrationInput struct {
	UserID        string
	Name          string
	Platform      string
	Currency      string
	UpstreamToken string
}

type IntegrationService interface {
	Create(ctx context.Context, input CreateIntegrationInput) (*domain.Integration, error)
	ListForOwner(ctx context.Context, userID string) ([]domain.Integration, error)
}

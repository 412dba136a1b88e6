package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

const hookSecretBytes = 16

type integrationService struct {
	repo ports.IntegrationRepository
	log  zerolog.Logger
}

// NewIntegrationService returns an IntegrationService implementation.
func NewIntegrationService(repo ports.IntegrationRepository, log zerolog.Logger) ports.IntegrationService {
	return &integrationService{repo: repo, log: log}
}

// Create registers a new integration. The hook secret is generated here,
// once, from a cryptographically strong source; nothing persists without a
// non-empty upstream token.
func (s *integrationService) Create(ctx context.Context, input ports.CreateIntegrationInput) (*domain.Integration, error) {
	if input.UpstreamToken == "" {
		return nil, domain.ErrMissingToken
	}

	integration := &domain.Integration{
		ID:            uuid.New().String(),
		UserID:        input.UserID,
		Name:          input.Name,
		Platform:      input.Platform,
		Currency:      input.Currency,
		UpstreamToken: input.UpstreamToken,
		HookSecret:    generateHookSecret(),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, integration); err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create integration")
		return nil, err
	}

	s.log.Info().
		Str("integration_id", integration.ID).
		Str("user_id", input.UserID).
		Str("platform", integration.Platform).
		Msg("integration created")

	return integration, nil
}

func (s *integrationService) ListForOwner(ctx context.Context, userID string) ([]domain.Integration, error) {
	return s.repo.ListByUser(ctx, userID)
}

// generateHookSecret returns a 32-character hex secret from crypto/rand.
func generateHookSecret() string {
	b := make([]byte, hookSecretBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process cannot mint secrets at all
		panic(err)
	}
	return hex.EncodeToString(b)
}

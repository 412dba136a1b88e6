package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/utmhub/conversion-relay/internal/api/metrics"
	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

// IntegrationCache abstracts the read-through integration cache (Redis).
// Get returns (nil, nil) on a miss; integrations never mutate after
// creation, so cached copies cannot go stale.
type IntegrationCache interface {
	Get(ctx context.Context, id string) (*domain.Integration, error)
	Set(ctx context.Context, integration *domain.Integration) error
}

type webhookService struct {
	integrations ports.IntegrationRepository
	events       ports.EventService
	upstream     ports.UpstreamClient
	cache        IntegrationCache
	log          zerolog.Logger
}

// NewWebhookService returns a WebhookService implementation.
func NewWebhookService(
	integrations ports.IntegrationRepository,
	events ports.EventService,
	upstream ports.UpstreamClient,
	cache IntegrationCache,
	log zerolog.Logger,
) ports.WebhookService {
	return &webhookService{
		integrations: integrations,
		events:       events,
		upstream:     upstream,
		cache:        cache,
		log:          log,
	}
}

// Receive runs one webhook call end-to-end: integration lookup, secret
// check, normalization, upstream delivery, ledger append. Rejected calls
// (unknown integration, wrong secret) leave no trace in the ledger: an
// unauthenticated caller must not pollute another integration's event log.
func (s *webhookService) Receive(ctx context.Context, in ports.ReceiveInput) error {
	integration, err := s.lookup(ctx, in.IntegrationID)
	if err != nil {
		metrics.WebhooksReceivedTotal.WithLabelValues("not_found").Inc()
		return fmt.Errorf("receive webhook: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(integration.HookSecret), []byte(in.HookSecret)) != 1 {
		metrics.WebhooksReceivedTotal.WithLabelValues("unauthorized").Inc()
		s.log.Warn().Str("integration_id", integration.ID).Msg("hook secret mismatch")
		return domain.ErrInvalidHookSecret
	}

	payload := buildOrderPayload(in.Body, integration, time.Now())

	start := time.Now()
	result, err := s.upstream.Send(ctx, payload, integration.UpstreamToken)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		metrics.UpstreamDeliveryDuration.WithLabelValues("transport_error").Observe(elapsed)
		metrics.WebhooksReceivedTotal.WithLabelValues("transport_error").Inc()
		s.record(ctx, integration.ID, domain.EventError, nil, err.Error())
		return fmt.Errorf("forward order %s: %w", payload.OrderID, err)
	}

	if result.Delivered {
		metrics.UpstreamDeliveryDuration.WithLabelValues("delivered").Observe(elapsed)
		metrics.WebhooksReceivedTotal.WithLabelValues("forwarded").Inc()
		s.record(ctx, integration.ID, domain.EventSuccess, &result.StatusCode, "")
	} else {
		// a non-2xx answer is still a received response, not a transport
		// fault; the caller is acked and the code preserved for diagnosis
		metrics.UpstreamDeliveryDuration.WithLabelValues("rejected").Observe(elapsed)
		metrics.WebhooksReceivedTotal.WithLabelValues("rejected").Inc()
		s.record(ctx, integration.ID, domain.EventError, &result.StatusCode,
			fmt.Sprintf("upstream responded %d", result.StatusCode))
	}

	s.log.Info().
		Str("integration_id", integration.ID).
		Str("order_id", payload.OrderID).
		Bool("delivered", result.Delivered).
		Int("upstream_status", result.StatusCode).
		Msg("webhook processed")

	return nil
}

// lookup resolves the integration through the cache first, falling back to
// the store. Cache failures are non-fatal; the store stays authoritative.
func (s *webhookService) lookup(ctx context.Context, id string) (*domain.Integration, error) {
	if cached, err := s.cache.Get(ctx, id); err != nil {
		metrics.IntegrationCacheTotal.WithLabelValues("error").Inc()
		s.log.Warn().Err(err).Str("integration_id", id).Msg("cache lookup failed, falling back to store")
	} else if cached != nil {
		metrics.IntegrationCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.IntegrationCacheTotal.WithLabelValues("miss").Inc()
	}

	integration, err := s.integrations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, integration); err != nil {
		s.log.Warn().Err(err).Str("integration_id", id).Msg("failed to prime integration cache")
	}
	return integration, nil
}

// record appends the outcome to the ledger. A ledger write failure must not
// flip an otherwise-classified outcome, so it is logged and swallowed.
func (s *webhookService) record(ctx context.Context, integrationID string, status domain.EventStatus, upstreamStatus *int, detail string) {
	if _, err := s.events.Append(ctx, integrationID, status, upstreamStatus, detail); err != nil {
		s.log.Error().Err(err).Str("integration_id", integrationID).Msg("failed to append delivery event")
	}
}

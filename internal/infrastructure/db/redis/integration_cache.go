package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

const cacheTTL = 5 * time.Minute

// IntegrationCache is a read-through cache for integration records on the
// webhook hot path. Integrations are immutable after creation, so a cached
// copy can never go stale; the TTL only bounds memory.
// Key format: integration:<id>
type IntegrationCache struct {
	client *redis.Client
}

// NewIntegrationCache creates an IntegrationCache wrapping the given client.
func NewIntegrationCache(client *redis.Client) *IntegrationCache {
	return &IntegrationCache{client: client}
}

// cachedIntegration mirrors domain.Integration with every field exported to
// JSON: the domain type hides secrets from API responses, but the cache must
// round-trip them.
type cachedIntegration struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Platform      string    `json:"platform"`
	Currency      string    `json:"currency"`
	UpstreamToken string    `json:"upstream_token"`
	HookSecret    string    `json:"hook_secret"`
	CreatedAt     time.Time `json:"created_at"`
}

// Get returns the cached integration, or (nil, nil) on a miss.
func (c *IntegrationCache) Get(ctx context.Context, id string) (*domain.Integration, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var ci cachedIntegration
	if err := json.Unmarshal(raw, &ci); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}

	return &domain.Integration{
		ID:            ci.ID,
		UserID:        ci.UserID,
		Name:          ci.Name,
		Platform:      ci.Platform,
		Currency:      ci.Currency,
		UpstreamToken: ci.UpstreamToken,
		HookSecret:    ci.HookSecret,
		CreatedAt:     ci.CreatedAt,
	}, nil
}

// Set stores the integration (expires after cacheTTL).
func (c *IntegrationCache) Set(ctx context.Context, in *domain.Integration) error {
	raw, err := json.Marshal(cachedIntegration{
		ID:            in.ID,
		UserID:        in.UserID,
		Name:          in.Name,
		Platform:      in.Platform,
		Currency:      in.Currency,
		UpstreamToken: in.UpstreamToken,
		HookSecret:    in.HookSecret,
		CreatedAt:     in.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(in.ID), raw, cacheTTL).Err()
}

func (c *IntegrationCache) key(id string) string {
	return "integration:" + id
}

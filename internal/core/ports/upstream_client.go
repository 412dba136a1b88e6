package ports

import (
	"context"

	"github.com/utmhub/conversion-relay/internal/core/domain"
)

// DispatchResult classifies a single upstream delivery attempt. Delivered
// means a response was received with a 2xx status; any received response,
// 2xx or not, carries its status code.
type DispatchResult struct {
	Delivered  bool
	StatusCode int
}

// UpstreamClient sends one canonical order to the analytics API. It makes a
// single best-effort attempt: no retries, no backoff. Network-level failures
// (DNS, refused connection, timeout) surface as domain.ErrUpstreamUnreachable.
type UpstreamClient interface {
	Send(ctx context.Context, payload *domain.OrderPayload, token string) (DispatchResult, error)
}

// Package upstream implements the HTTP client for the external analytics
// API. One delivery is one POST; the response status code is the only
// signal consumed.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

const (
	defaultRequestTimeout = 10 * time.Second
	tokenHeader           = "x-api-token"
)

// Client posts canonical orders to a fixed upstream URL with a bounded
// per-request timeout. It makes exactly one attempt per call.
type Client struct {
	url     string
	httpc   *http.Client
	timeout time.Duration
}

// NewClient creates a Client for the given endpoint. A non-positive timeout
// falls back to the default.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		url:     url,
		httpc:   &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Send delivers the payload. Any received response, 2xx or not, yields a
// DispatchResult; only network-level failures (DNS, refused connection,
// timeout) return an error, wrapping domain.ErrUpstreamUnreachable.
func (c *Client) Send(ctx context.Context, payload *domain.OrderPayload, token string) (ports.DispatchResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("encode order: %w", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return ports.DispatchResult{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	// drain so the connection can be reused; the body itself is not consumed
	_, _ = io.Copy(io.Discard, resp.Body)

	return ports.DispatchResult{
		Delivered:  resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
	}, nil
}

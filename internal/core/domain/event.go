package domain

import "time"

// EventStatus is the recorded outcome of a single webhook ingress attempt.
type EventStatus string

const (
	EventSuccess EventStatus = "success"
	EventError   EventStatus = "error"
)

// DeliveryEvent is an append-only ledger row for one forwarded webhook.
// UpstreamStatus is nil when the upstream never answered (transport failure);
// Error is set only on error outcomes. Rows are never updated or deleted.
type DeliveryEvent struct {
	ID             int64       `json:"id"`
	IntegrationID  string      `json:"integration_id"`
	Status         EventStatus `json:"status"`
	UpstreamStatus *int        `json:"upstream_status,omitempty"`
	Error          string      `json:"error,omitempty"`
	ReceivedAt     time.Time   `json:"received_at"`
}

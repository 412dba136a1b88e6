// Package metrics defines and registers all custom Prometheus metrics for
// the conversion relay. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "relay"

// ── Webhook ingress metrics ───────────────────────────────────────────────────

// WebhooksReceivedTotal counts inbound webhook calls by terminal outcome.
// Labels:
//   - outcome: "forwarded", "rejected", "not_found", "unauthorized", "transport_error"
var WebhooksReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhooks_received_total",
		Help:      "Total number of inbound webhook calls, by outcome.",
	},
	[]string{"outcome"},
)

// UpstreamDeliveryDuration measures the round-trip time of a single upstream
// delivery attempt.
// Label:
//   - status: "delivered", "rejected", or "transport_error"
var UpstreamDeliveryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_delivery_duration_seconds",
		Help:      "Duration of upstream delivery attempts from send to response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"status"},
)

// EventsAppendedTotal counts ledger rows written.
// Label:
//   - status: "success" or "error"
var EventsAppendedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_appended_total",
		Help:      "Total number of delivery events appended to the ledger.",
	},
	[]string{"status"},
)

// IntegrationCacheTotal counts integration cache lookups on the webhook
// path. Every lookup lands in exactly one bucket.
// Label:
//   - result: "hit", "miss", or "error"
var IntegrationCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "integration_cache_total",
		Help:      "Total number of integration cache lookups, labelled by result (hit/miss/error).",
	},
	[]string{"result"},
)

package service

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

const (
	defaultCurrency    = "BRL"
	defaultPlatform    = "Custom"
	placeholderMissing = "N/A"
	upstreamTimeLayout = "2006-01-02 15:04:05"
)

// buildOrderPayload maps an arbitrary inbound checkout body into the fixed
// upstream order schema. The policy is "log something over reject": missing
// or malformed fields are defaulted, never bounced back to the caller.
// Timestamps reflect ingress processing time, not anything the sender claims.
func buildOrderPayload(in ports.WebhookInput, integration *domain.Integration, now time.Time) *domain.OrderPayload {
	ts := now.UTC().Format(upstreamTimeLayout)
	cents := coerceCents(in.Value)

	orderID := coerceOrderID(in.TransactionID)
	if orderID == "" {
		// best-effort fallback only; not a uniqueness guarantee
		orderID = strconv.FormatInt(now.UnixMilli(), 10)
	}

	platform := integration.Platform
	if platform == "" {
		platform = defaultPlatform
	}

	currency := integration.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return &domain.OrderPayload{
		OrderID:       orderID,
		Platform:      platform,
		PaymentMethod: "credit_card",
		Status:        "paid",
		CreatedAt:     ts,
		ApprovedDate:  ts,
		RefundedAt:    nil,
		Customer: domain.Customer{
			Name:     orDefault(in.Name, placeholderMissing),
			Email:    orDefault(in.Email, placeholderMissing),
			Phone:    orNil(in.Phone),
			Document: nil,
		},
		Products: []domain.Product{{
			ID:           "item",
			Name:         "Produto",
			Quantity:     1,
			PriceInCents: cents,
		}},
		Tracking: domain.TrackingParameters{
			UTMSource:   orNil(in.UTMSource),
			UTMCampaign: orNil(in.UTMCampaign),
			UTMMedium:   orNil(in.UTMMedium),
			UTMContent:  orNil(in.UTMContent),
			UTMTerm:     orNil(in.UTMTerm),
		},
		Commission: domain.Commission{
			TotalPriceInCents:     cents,
			GatewayFeeInCents:     0,
			UserCommissionInCents: cents,
			Currency:              currency,
		},
	}
}

// coerceOrderID stringifies the inbound transaction id. Platforms send it
// as a string or a number; anything else counts as absent.
func coerceOrderID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case json.Number:
		return id.String()
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(id, 10)
	case int:
		return strconv.Itoa(id)
	default:
		return ""
	}
}

// coerceCents turns whatever arrived in the "value" field into an integer
// minor-unit amount. Absent or non-numeric input coerces to zero.
func coerceCents(v any) int64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return int64(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return int64(f)
	default:
		return 0
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func orNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

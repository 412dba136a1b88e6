package service

import (
	"testing"
	"time"

	"github.com/utmhub/conversion-relay/internal/core/domain"
	"github.com/utmhub/conversion-relay/internal/core/ports"
)

var normalizeNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func normalizeFixture() *domain.Integration {
	return &domain.Integration{
		ID:       "int-1",
		Platform: "hotmart",
		Currency: "USD",
	}
}

func TestBuildOrderPayload_FullBody(t *testing.T) {
	in := ports.WebhookInput{
		TransactionID: "tx-42",
		Name:          "Ana",
		Email:         "ana@example.com",
		Phone:         "+5511999999999",
		Value:         float64(4990),
		UTMSource:     "facebook",
		UTMCampaign:   "launch",
	}

	p := buildOrderPayload(in, normalizeFixture(), normalizeNow)

	if p.OrderID != "tx-42" {
		t.Errorf("expected inbound transaction id, got %q", p.OrderID)
	}
	if p.Platform != "hotmart" {
		t.Errorf("expected integration platform, got %q", p.Platform)
	}
	if p.Status != "paid" || p.PaymentMethod != "credit_card" {
		t.Errorf("fixed fields wrong: status=%q method=%q", p.Status, p.PaymentMethod)
	}
	if p.CreatedAt != "2025-03-14 15:09:26" || p.ApprovedDate != p.CreatedAt {
		t.Errorf("timestamps must reflect ingress time: %q / %q", p.CreatedAt, p.ApprovedDate)
	}
	if p.RefundedAt != nil {
		t.Errorf("refundedAt must be null")
	}
	if p.Customer.Name != "Ana" || p.Customer.Email != "ana@example.com" {
		t.Errorf("customer not passed through: %+v", p.Customer)
	}
	if p.Customer.Phone == nil || *p.Customer.Phone != "+5511999999999" {
		t.Errorf("phone not passed through: %v", p.Customer.Phone)
	}
	if p.Customer.Document != nil {
		t.Errorf("document must always be null")
	}
	if len(p.Products) != 1 || p.Products[0].PriceInCents != 4990 || p.Products[0].Quantity != 1 {
		t.Errorf("unexpected product line: %+v", p.Products)
	}
	if p.Tracking.UTMSource == nil || *p.Tracking.UTMSource != "facebook" {
		t.Errorf("utm_source not passed through: %v", p.Tracking.UTMSource)
	}
	if p.Tracking.UTMMedium != nil {
		t.Errorf("absent utm fields must stay null, got %v", *p.Tracking.UTMMedium)
	}
	if p.Tracking.Src != nil || p.Tracking.Sck != nil {
		t.Errorf("src/sck are always null")
	}
	if p.Commission.TotalPriceInCents != 4990 || p.Commission.UserCommissionInCents != 4990 {
		t.Errorf("commission must equal the coerced value: %+v", p.Commission)
	}
	if p.Commission.GatewayFeeInCents != 0 {
		t.Errorf("gateway fee is fixed at zero")
	}
	if p.Commission.Currency != "USD" {
		t.Errorf("expected integration currency, got %q", p.Commission.Currency)
	}
}

func TestBuildOrderPayload_Defaults(t *testing.T) {
	p := buildOrderPayload(ports.WebhookInput{}, &domain.Integration{ID: "int-1"}, normalizeNow)

	if p.OrderID != "1741964966000" {
		t.Errorf("expected unix-milli fallback order id, got %q", p.OrderID)
	}
	if p.Platform != "Custom" {
		t.Errorf("expected platform fallback, got %q", p.Platform)
	}
	if p.Customer.Name != "N/A" || p.Customer.Email != "N/A" {
		t.Errorf("missing customer fields must default to N/A: %+v", p.Customer)
	}
	if p.Customer.Phone != nil {
		t.Errorf("missing phone must stay null")
	}
	if p.Products[0].PriceInCents != 0 {
		t.Errorf("missing value must coerce to zero, got %d", p.Products[0].PriceInCents)
	}
	if p.Commission.Currency != "BRL" {
		t.Errorf("expected BRL currency fallback, got %q", p.Commission.Currency)
	}
}

func TestCoerceOrderID(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "tx-1", "tx-1"},
		{"integer number", float64(123), "123"},
		{"decimal number", float64(12.5), "12.5"},
		{"int", 77, "77"},
		{"bool", true, ""},
	}
	for _, tc := range cases {
		if got := coerceOrderID(tc.in); got != tc.want {
			t.Errorf("%s: coerceOrderID(%v) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestBuildOrderPayload_NumericTransactionID(t *testing.T) {
	in := ports.WebhookInput{TransactionID: float64(123), Value: float64(500)}
	p := buildOrderPayload(in, normalizeFixture(), normalizeNow)
	if p.OrderID != "123" {
		t.Errorf("numeric transaction ids must stringify, got %q", p.OrderID)
	}
}

func TestCoerceCents(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int64
	}{
		{"nil", nil, 0},
		{"float", float64(4990), 4990},
		{"float truncates", float64(49.9), 49},
		{"numeric string", "1250", 1250},
		{"decimal string", "12.5", 12},
		{"garbage string", "abc", 0},
		{"bool", true, 0},
		{"int", 7, 7},
	}
	for _, tc := range cases {
		if got := coerceCents(tc.in); got != tc.want {
			t.Errorf("%s: coerceCents(%v) = %d, want %d", tc.name, tc.in, got, tc.want)
		}
	}
}

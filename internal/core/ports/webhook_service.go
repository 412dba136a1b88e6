package ports

import "context"

// WebhookInput is the inbound checkout payload. Every field is optional:
// checkout platforms disagree on shape, so missing values are normalized
// with defaults instead of rejected. Value and TransactionID may arrive
// as JSON numbers or strings.
type WebhookInput struct {
	TransactionID any    `json:"transactionId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Value         any    `json:"value"`
	UTMSource     string `json:"utm_source"`
	UTMCampaign   string `json:"utm_campaign"`
	UTMMedium     string `json:"utm_medium"`
	UTMContent    string `json:"utm_content"`
	UTMTerm       string `json:"utm_term"`
}

// ReceiveInput identifies the target integration and carries the presented
// hook secret alongside the raw body.
type ReceiveInput struct {
	IntegrationID string
	HookSecret    string
	Body          WebhookInput
}

type WebhookService interface {
	Receive(ctx context.Context, input ReceiveInput) error
}

package handler

// webhookRequest is the inbound checkout payload. Checkout platforms
// disagree on shape, so nothing here is validated: unknown fields are
// ignored and missing ones are defaulted downstream. Value and
// TransactionID stay untyped because platforms send them as numbers or
// strings.
type webhookRequest struct {
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

type okResponse struct {
	OK bool `json:"ok"`
}

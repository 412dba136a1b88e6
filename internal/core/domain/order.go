package domain

// OrderPayload is the canonical order document sent to the upstream
// analytics API. It is built per webhook call and never persisted.
// Field names follow the upstream wire contract exactly.
type OrderPayload struct {
	OrderID       string             `json:"orderId"`
	Platform      string             `json:"platform"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	CreatedAt     string             `json:"createdAt"`
	ApprovedDate  string             `json:"approvedDate"`
	RefundedAt    *string            `json:"refundedAt"`
	Customer      Customer           `json:"customer"`
	Products      []Product          `json:"products"`
	Tracking      TrackingParameters `json:"trackingParameters"`
	Commission    Commission         `json:"commission"`
}

type Customer struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Document *string `json:"document"`
}

type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PlanID       *string `json:"planId"`
	PlanName     *string `json:"planName"`
	Quantity     int     `json:"quantity"`
	PriceInCents int64   `json:"priceInCents"`
}

// TrackingParameters carries attribution fields through untouched. Absent
// inbound values stay null; they are never defaulted to placeholders.
type TrackingParameters struct {
	Src         *string `json:"src"`
	Sck         *string `json:"sck"`
	UTMSource   *string `json:"utm_source"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMMedium   *string `json:"utm_medium"`
	UTMContent  *string `json:"utm_content"`
	UTMTerm     *string `json:"utm_term"`
}

type Commission struct {
	TotalPriceInCents     int64  `json:"totalPriceInCents"`
	GatewayFeeInCents     int64  `json:"gatewayFeeInCents"`
	UserCommissionInCents int64  `json:"userCommissionInCents"`
	Currency              string `json:"currency"`
}

package handler

import "time"

type createIntegrationRequest struct {
	Name          string `json:"name"`
	Platform      string `json:"platform"`
	Currency      string `json:"currency"`
	UpstreamToken string `json:"upstream_token"`
}

// integrationResponse is the list/detail shape: secrets are omitted.
type integrationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Platform  string    `json:"platform"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// createIntegrationResponse additionally carries the hook secret, the one
// and only time it is returned in plaintext. The caller pastes it into the
// checkout platform's webhook settings.
type createIntegrationResponse struct {
	integrationResponse
	HookSecret string `json:"hook_secret"`
	HookPath   string `json:"hook_path"`
}

package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrIntegrationNotFound = errors.New("integration not found")
var ErrMissingToken = errors.New("missing upstream token")
var ErrInvalidHookSecret = errors.New("invalid hook secret")
var ErrUpstreamUnreachable = errors.New("upstream unreachable")

// Integration is a registered checkout platform owned by a single user.
// The hook secret is generated once at creation and never rotates; inbound
// webhook calls must present it verbatim.
type Integration struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Platform      string    `json:"platform"`
	Currency      string    `json:"currency"`
	UpstreamToken string    `json:"-"`
	HookSecret    string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

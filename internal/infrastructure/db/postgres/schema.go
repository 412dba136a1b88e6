package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// events.integration_id carries no foreign key: an event may outlive the
// integration it references, and ledger rows are never cascaded away.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id UUID PRIMARY KEY,
	email TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS integrations (
	id UUID PRIMARY KEY,
	user_id UUID NOT NULL REFERENCES users(id),
	name TEXT NOT NULL DEFAULT '',
	platform TEXT NOT NULL DEFAULT '',
	currency TEXT NOT NULL DEFAULT '',
	upstream_token TEXT NOT NULL,
	hook_secret TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS events (
	id BIGSERIAL PRIMARY KEY,
	integration_id UUID NOT NULL,
	status TEXT NOT NULL,
	upstream_status INTEGER,
	error TEXT,
	received_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_integrations_user ON integrations (user_id);
CREATE INDEX IF NOT EXISTS idx_events_integration_received ON events (integration_id, received_at DESC);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
// Static setup, run once at startup before the server accepts traffic.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Package postgres opens database/sql connections over the pgx stdlib
// driver and owns the audit schema.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Schema creates the audit trail table. Records are append-only; there are
// deliberately no UPDATE or DELETE paths over this table in the codebase.
const Schema = `
CREATE TABLE IF NOT EXISTS audit_records (
	id          UUID PRIMARY KEY,
	entity_type TEXT        NOT NULL,
	entity_id   BIGINT      NOT NULL,
	action      TEXT        NOT NULL,
	diffs       JSONB       NOT NULL DEFAULT '[]',
	actor_id    TEXT,
	actor_name  TEXT,
	ip_address  TEXT        NOT NULL DEFAULT '',
	user_agent  TEXT        NOT NULL DEFAULT '',
	occurred_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_records_entity
	ON audit_records (entity_type, entity_id, occurred_at);
`

// Open connects and verifies the connection.
func Open(ctx context.Context, databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// EnsureSchema applies the audit schema idempotently.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply audit schema: %w", err)
	}
	return nil
}

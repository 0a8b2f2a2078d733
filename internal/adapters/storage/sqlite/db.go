// Package sqlite implements the storage ports on SQLite through the pure-Go
// modernc.org/sqlite driver: users and their linkages, KYC documents, and
// the audit log.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/account-action-service/internal/platform/config"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// dateLayout is the TEXT encoding used for every timestamp column. The
// fractional part is fixed width so that values sort lexically.
const dateLayout = "2006-01-02T15:04:05.000000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                    INTEGER PRIMARY KEY,
	email                 TEXT NOT NULL UNIQUE,
	crm_user_id           TEXT NOT NULL DEFAULT '',
	kyc_document_id       TEXT NOT NULL DEFAULT '',
	rewards_profile_id    TEXT NOT NULL DEFAULT '',
	marketing_external_id TEXT NOT NULL DEFAULT '',
	created_at            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS kyc_documents (
	id         TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL,
	kind       TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS audit_records (
	id         TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL,
	event_type TEXT NOT NULL,
	successful INTEGER NOT NULL,
	message    TEXT NOT NULL DEFAULT '',
	event_uuid TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audit_records_user_created
	ON audit_records (user_id, created_at);
`

// Open opens the database described by cfg and verifies the connection.
// The schema is not created; call InitSchema for that.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", cfg.DSN, err)
	}
	db.SetMaxOpenConns(max(cfg.MaxOpenConns, 1))

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	if cfg.BusyTimeout > 0 {
		pragma := fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds())
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("setting busy timeout: %w", err)
		}
	}

	return db, nil
}

// InitSchema creates every table and index if they do not exist yet. It is
// safe to run on every start.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enabling foreign keys: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// Compile-time interface check.
var _ ports.HealthChecker = (*HealthChecker)(nil)

// HealthChecker reports whether the database answers a ping.
type HealthChecker struct {
	db *sql.DB
}

// NewHealthChecker creates a health checker for db.
func NewHealthChecker(db *sql.DB) *HealthChecker {
	return &HealthChecker{db: db}
}

// Name implements ports.HealthChecker.
func (h *HealthChecker) Name() string { return "sqlite" }

// HealthCheck implements ports.HealthChecker.
func (h *HealthChecker) HealthCheck(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

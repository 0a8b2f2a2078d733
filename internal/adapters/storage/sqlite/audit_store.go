package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AuditLog    = (*AuditStore)(nil)
	_ ports.AuditReader = (*AuditStore)(nil)
)

// AuditStore implements ports.AuditLog and ports.AuditReader over the
// audit_records table. Records are append-only.
type AuditStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewAuditStore creates an AuditStore.
func NewAuditStore(db *sql.DB) *AuditStore {
	return &AuditStore{db: db, now: time.Now}
}

// Create assigns the record an ID and creation time and persists it.
func (s *AuditStore) Create(ctx context.Context, r audit.Record) (audit.Record, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	r.CreatedAt = s.now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_records (id, user_id, event_type, successful, message, event_uuid, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, string(r.EventType), r.Successful, r.Message, r.EventUUID, formatTime(r.CreatedAt))
	if err != nil {
		return audit.Record{}, fmt.Errorf("inserting audit record for user %d: %w", r.UserID, err)
	}
	return r, nil
}

// ListByUser returns the user's records, newest first. A non-positive limit
// returns all of them.
func (s *AuditStore) ListByUser(ctx context.Context, userID int64, limit int) ([]audit.Record, error) {
	query := `SELECT id, user_id, event_type, successful, message, event_uuid, created_at
		FROM audit_records WHERE user_id = ? ORDER BY created_at DESC, rowid DESC`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing audit records for user %d: %w", userID, err)
	}
	defer func() { _ = rows.Close() }()

	records := []audit.Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning audit record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanRecord(rows *sql.Rows) (audit.Record, error) {
	var (
		r         audit.Record
		eventType string
		createdAt string
	)
	if err := rows.Scan(&r.ID, &r.UserID, &eventType, &r.Successful, &r.Message, &r.EventUUID, &createdAt); err != nil {
		return audit.Record{}, err
	}
	r.EventType = audit.EventType(eventType)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

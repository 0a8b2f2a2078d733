package ports

import (
	"context"

	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
)

// AccountRepository loads users together with their external linkages.
// Implemented by the storage adapter.
type AccountRepository interface {
	// GetUser returns the user with the given ID.
	// Returns domain.ErrNotFound if the user does not exist.
	GetUser(ctx context.Context, id int64) (*account.User, error)
}

// DocumentStore holds identity-verification documents.
type DocumentStore interface {
	// DeleteKYCDocument removes the user's KYC document and clears the
	// user's reference to it.
	// Returns domain.ErrNotFound if the document does not exist.
	DeleteKYCDocument(ctx context.Context, userID int64, documentID string) error
}

// AuditLog is the durable sink for batch audit records. Create is called
// exactly once per processed batch.
type AuditLog interface {
	// Create persists the record and returns it with ID and CreatedAt set.
	Create(ctx context.Context, record audit.Record) (audit.Record, error)
}

// AuditReader reads back audit records for a user.
type AuditReader interface {
	// ListByUser returns the user's records, newest first, at most limit
	// entries. A non-positive limit returns every record.
	ListByUser(ctx context.Context, userID int64, limit int) ([]audit.Record, error)
}

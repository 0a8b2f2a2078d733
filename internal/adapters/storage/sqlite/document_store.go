package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Compile-time interface check.
var _ ports.DocumentStore = (*DocumentStore)(nil)

// DocumentStore implements ports.DocumentStore over the kyc_documents table.
// Documents are written by the onboarding flow; this service only removes them.
type DocumentStore struct {
	db *sql.DB
}

// NewDocumentStore creates a DocumentStore.
func NewDocumentStore(db *sql.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// DeleteKYCDocument removes the document and clears the user's reference to
// it in one transaction. Returns domain.ErrNotFound if the user holds no
// such document.
func (s *DocumentStore) DeleteKYCDocument(ctx context.Context, userID int64, documentID string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM kyc_documents WHERE id = ? AND user_id = ?`, documentID, userID)
		if err != nil {
			return fmt.Errorf("deleting kyc document %s: %w", documentID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting kyc document %s: %w", documentID, err)
		}
		if n == 0 {
			return fmt.Errorf("kyc document %s: %w", documentID, domain.ErrNotFound)
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET kyc_document_id = '' WHERE id = ? AND kyc_document_id = ?`,
			userID, documentID); err != nil {
			return fmt.Errorf("unlinking kyc document %s: %w", documentID, err)
		}
		return nil
	})
}

func (s *DocumentStore) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

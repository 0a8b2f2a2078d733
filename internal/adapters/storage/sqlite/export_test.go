package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
)

// Test fixtures. Users and KYC documents are owned upstream, so the stores
// expose no writers for them outside tests.

// SaveUser inserts or replaces a user. A zero CreatedAt is set to now.
func (s *UserStore) SaveUser(ctx context.Context, u *account.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, email, crm_user_id, kyc_document_id, rewards_profile_id, marketing_external_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			email = excluded.email,
			crm_user_id = excluded.crm_user_id,
			kyc_document_id = excluded.kyc_document_id,
			rewards_profile_id = excluded.rewards_profile_id,
			marketing_external_id = excluded.marketing_external_id`,
		u.ID, u.Email, u.CRMUserID, u.KYCDocumentID, u.RewardsProfileID, u.MarketingExternalID,
		formatTime(u.CreatedAt))
	if err != nil {
		return fmt.Errorf("saving user %d: %w", u.ID, err)
	}
	return nil
}

// SaveKYCDocument records a KYC document for the user and links it on the
// user row.
func (s *DocumentStore) SaveKYCDocument(ctx context.Context, userID int64, documentID, kind string) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kyc_documents (id, user_id, kind, created_at) VALUES (?, ?, ?, ?)`,
			documentID, userID, kind, formatTime(time.Now())); err != nil {
			return fmt.Errorf("inserting kyc document %s: %w", documentID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET kyc_document_id = ? WHERE id = ?`, documentID, userID); err != nil {
			return fmt.Errorf("linking kyc document %s: %w", documentID, err)
		}
		return nil
	})
}

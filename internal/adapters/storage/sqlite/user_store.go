package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Compile-time interface check.
var _ ports.AccountRepository = (*UserStore)(nil)

// UserStore implements ports.AccountRepository. Users are provisioned by the
// account system that owns them; this service only reads them.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a UserStore.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// GetUser returns the user with the given ID, or domain.ErrNotFound.
func (s *UserStore) GetUser(ctx context.Context, id int64) (*account.User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, email, crm_user_id, kyc_document_id, rewards_profile_id, marketing_external_id, created_at
		 FROM users WHERE id = ?`, id)

	var (
		u         account.User
		createdAt string
	)
	err := row.Scan(&u.ID, &u.Email, &u.CRMUserID, &u.KYCDocumentID, &u.RewardsProfileID,
		&u.MarketingExternalID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading user %d: %w", id, err)
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}


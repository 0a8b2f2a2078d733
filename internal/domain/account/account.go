// Package account holds the user-owned entities whose external linkages are
// created, updated and removed through batches of account actions.
package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/account-action-service/internal/domain"
)

// ErrBankConnectionRemoval is wrapped by the error returned when removing a
// user's bank connections fails.
var ErrBankConnectionRemoval = errors.New("bank connection removal failed")

// User is an account holder together with the identifiers linking them to
// external systems. An empty identifier means the user has no record in
// that system.
type User struct {
	ID                  int64
	Email               string
	CRMUserID           string
	KYCDocumentID       string
	RewardsProfileID    string
	MarketingExternalID string
	CreatedAt           time.Time
}

// HasCRMUser reports whether the user is linked to a CRM identity.
func (u *User) HasCRMUser() bool { return strings.TrimSpace(u.CRMUserID) != "" }

// HasKYCDocument reports whether the user has a stored KYC document.
func (u *User) HasKYCDocument() bool { return strings.TrimSpace(u.KYCDocumentID) != "" }

// HasRewardsProfile reports whether the user is enrolled in rewards.
func (u *User) HasRewardsProfile() bool { return strings.TrimSpace(u.RewardsProfileID) != "" }

// HasMarketingProfile reports whether the user has a marketing-automation profile.
func (u *User) HasMarketingProfile() bool { return strings.TrimSpace(u.MarketingExternalID) != "" }

// BankConnection is one link between a user and a financial institution held
// by the banking aggregator.
type BankConnection struct {
	ID          string
	UserID      int64
	Institution string
	Status      string
	CreatedAt   time.Time
}

// ValidateUserID rejects non-positive user identifiers.
func ValidateUserID(id int64) error {
	if id <= 0 {
		return &domain.ValidationError{
			Fields: map[string]string{"user_id": fmt.Sprintf("must be positive, got %d", id)},
		}
	}
	return nil
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
)

// CRMClient defines the client port for the customer-relationship system.
// Implemented by the ACL adapter; called by the application layer.
type CRMClient interface {
	// DeleteUser removes the CRM identity linked to a user.
	// Returns domain.ErrNotFound if the CRM has no such user.
	DeleteUser(ctx context.Context, crmUserID string) error
}

// RewardsClient defines the client port for the rewards programme.
type RewardsClient interface {
	// DeleteProfile removes a rewards profile and its accrued balance.
	DeleteProfile(ctx context.Context, profileID string) error
}

// MarketingClient defines the client port for the marketing-automation
// platform.
type MarketingClient interface {
	// DeleteProfile removes a contact identified by the external ID the
	// service registered it under.
	DeleteProfile(ctx context.Context, externalID string) error
}

// BankingClient defines the client port for the banking aggregator that
// holds a user's connections to financial institutions.
type BankingClient interface {
	// ListConnections returns every bank connection the user holds.
	// A user with no connections yields an empty slice, not an error.
	ListConnections(ctx context.Context, userID int64) ([]account.BankConnection, error)

	// DeleteConnection removes a single connection by ID.
	// Returns domain.ErrNotFound if the connection does not exist.
	DeleteConnection(ctx context.Context, connectionID string) error
}

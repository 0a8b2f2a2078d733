package ports

import (
	"context"

	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
	"github.com/jsamuelsen11/account-action-service/internal/domain/action"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
)

// AccountActionService defines the service port for batched account actions.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers and the admin CLI).
type AccountActionService interface {
	// RemoveLinkedAccounts removes every external linkage the user holds
	// (CRM identity, KYC document, rewards profile, marketing profile) as one
	// batch and writes a single audit record describing the outcome.
	// All removals are attempted even when some fail. A partial failure is
	// returned as an *action.BatchFailure after the failure record is written.
	// Returns domain.ErrNotFound if the user does not exist.
	RemoveLinkedAccounts(ctx context.Context, userID int64) (action.Success[audit.Record], error)

	// RemoveBankConnections deletes every bank connection the user holds.
	// All deletions are attempted; when any fails a single error wrapping
	// account.ErrBankConnectionRemoval and the first failure is returned.
	// No audit record is written.
	RemoveBankConnections(ctx context.Context, userID int64) (action.Success[[]account.BankConnection], error)

	// ListAuditRecords returns the user's audit records, newest first.
	ListAuditRecords(ctx context.Context, userID int64, limit int) ([]audit.Record, error)
}

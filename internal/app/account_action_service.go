// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/account-action-service/internal/app/batch"
	"github.com/jsamuelsen11/account-action-service/internal/app/settle"
	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
	"github.com/jsamuelsen11/account-action-service/internal/domain/action"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
	"github.com/jsamuelsen11/account-action-service/internal/platform/logging"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// EventRemoveLinkedAccounts names the audit event written when a user's
// linked accounts are removed.
const EventRemoveLinkedAccounts = "REMOVE_LINKED_ACCOUNTS"

// Names of the actions in the remove-linked-accounts batch, in the order they
// are submitted.
const (
	ActionDeleteCRMUser          = "delete-crm-user"
	ActionDeleteKYCDocument      = "delete-kyc-document"
	ActionDeleteRewardsProfile   = "delete-rewards-profile"
	ActionDeleteMarketingProfile = "delete-marketing-profile"
)

// DefaultAuditListLimit caps ListAuditRecords when the caller passes no limit.
const DefaultAuditListLimit = 50

// Compile-time check that AccountActionService implements ports.AccountActionService.
var _ ports.AccountActionService = (*AccountActionService)(nil)

// AccountActionDeps groups the ports AccountActionService depends on.
type AccountActionDeps struct {
	Users     ports.AccountRepository
	Documents ports.DocumentStore
	CRM       ports.CRMClient
	Rewards   ports.RewardsClient
	Marketing ports.MarketingClient
	Banking   ports.BankingClient
	Audit     ports.AuditReader
	Processor *batch.Processor
	// MaxWorkers bounds concurrent bank connection deletions. Zero or
	// negative deletes all at once.
	MaxWorkers int
}

// AccountActionService implements ports.AccountActionService. It builds the
// actions for each use case and hands them to the batch processor, or for
// bank connections settles them itself with a first-error policy.
type AccountActionService struct {
	users      ports.AccountRepository
	documents  ports.DocumentStore
	crm        ports.CRMClient
	rewards    ports.RewardsClient
	marketing  ports.MarketingClient
	banking    ports.BankingClient
	audit      ports.AuditReader
	processor  *batch.Processor
	maxWorkers int
	logger     *slog.Logger
}

// NewAccountActionService creates an AccountActionService. A nil logger
// discards output.
func NewAccountActionService(deps AccountActionDeps, logger *slog.Logger) *AccountActionService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountActionService{
		users:      deps.Users,
		documents:  deps.Documents,
		crm:        deps.CRM,
		rewards:    deps.Rewards,
		marketing:  deps.Marketing,
		banking:    deps.Banking,
		audit:      deps.Audit,
		processor:  deps.Processor,
		maxWorkers: deps.MaxWorkers,
		logger:     logger,
	}
}

// RemoveLinkedAccounts removes the user's CRM identity, KYC document, rewards
// profile and marketing profile as one remove batch. A linkage the user does
// not have resolves immediately as a no-op success.
func (s *AccountActionService) RemoveLinkedAccounts(ctx context.Context, userID int64) (action.Success[audit.Record], error) {
	s.logger.InfoContext(ctx, "removing linked accounts", slog.Int64("user_id", userID))

	if err := account.ValidateUserID(userID); err != nil {
		return action.Success[audit.Record]{}, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load user",
			slog.String("operation", "RemoveLinkedAccounts"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return action.Success[audit.Record]{}, err
	}

	event := audit.Event{Name: EventRemoveLinkedAccounts, CorrelationID: domain.CorrelationID(ctx)}

	result, err := s.processor.Process(ctx, action.CategoryRemove, s.linkedAccountActions(ctx, user), user.ID, event)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to remove linked accounts",
			slog.String("operation", "RemoveLinkedAccounts"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return action.Success[audit.Record]{}, err
	}

	s.logger.InfoContext(ctx, "removed linked accounts",
		slog.Int64("user_id", userID),
		slog.String("audit_record_id", result.Value.ID),
	)
	return result, nil
}

// linkedAccountActions builds one remove action per external system. Failures
// log through the request's logger so they keep its request attributes.
func (s *AccountActionService) linkedAccountActions(ctx context.Context, user *account.User) []action.Runner {
	opt := action.WithLogger(logging.FromContextOr(ctx, s.logger).With(slog.Int64("user_id", user.ID)))

	return []action.Runner{
		action.New(ActionDeleteCRMUser, action.CategoryRemove, func(ctx context.Context) (string, error) {
			if !user.HasCRMUser() {
				return "", nil
			}
			return user.CRMUserID, s.crm.DeleteUser(ctx, user.CRMUserID)
		}, opt),
		action.New(ActionDeleteKYCDocument, action.CategoryRemove, func(ctx context.Context) (string, error) {
			if !user.HasKYCDocument() {
				return "", nil
			}
			return user.KYCDocumentID, s.documents.DeleteKYCDocument(ctx, user.ID, user.KYCDocumentID)
		}, opt),
		action.New(ActionDeleteRewardsProfile, action.CategoryRemove, func(ctx context.Context) (string, error) {
			if !user.HasRewardsProfile() {
				return "", nil
			}
			return user.RewardsProfileID, s.rewards.DeleteProfile(ctx, user.RewardsProfileID)
		}, opt),
		action.New(ActionDeleteMarketingProfile, action.CategoryRemove, func(ctx context.Context) (string, error) {
			if !user.HasMarketingProfile() {
				return "", nil
			}
			return user.MarketingExternalID, s.marketing.DeleteProfile(ctx, user.MarketingExternalID)
		}, opt),
	}
}

// RemoveBankConnections deletes every bank connection the user holds. Every
// deletion runs to completion; if any fails, the first failure in input
// order is returned wrapped with account.ErrBankConnectionRemoval. No audit
// record is written.
func (s *AccountActionService) RemoveBankConnections(
	ctx context.Context, userID int64,
) (action.Success[[]account.BankConnection], error) {
	s.logger.InfoContext(ctx, "removing bank connections", slog.Int64("user_id", userID))

	if err := account.ValidateUserID(userID); err != nil {
		return action.Success[[]account.BankConnection]{}, err
	}

	conns, err := s.banking.ListConnections(ctx, userID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list bank connections",
			slog.String("operation", "RemoveBankConnections"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return action.Success[[]account.BankConnection]{}, fmt.Errorf("%w: %w", account.ErrBankConnectionRemoval, err)
	}

	results := settle.Run(ctx, s.maxWorkers, conns, func(ctx context.Context, c account.BankConnection) (account.BankConnection, error) {
		if err := s.banking.DeleteConnection(ctx, c.ID); err != nil {
			return account.BankConnection{}, fmt.Errorf("deleting bank connection %s: %w", c.ID, err)
		}
		return c, nil
	})

	if errs := settle.Errors(results); len(errs) > 0 {
		s.logger.ErrorContext(ctx, "failed to remove bank connections",
			slog.String("operation", "RemoveBankConnections"),
			slog.Int64("user_id", userID),
			slog.Int("failed", len(errs)),
			slog.Int("total", len(conns)),
			slog.Any("error", errors.Join(errs...)),
		)
		return action.Success[[]account.BankConnection]{}, fmt.Errorf("%w: %w", account.ErrBankConnectionRemoval, errs[0])
	}

	return action.Success[[]account.BankConnection]{Value: settle.Values(results)}, nil
}

// ListAuditRecords returns the user's audit records, newest first. A
// non-positive limit falls back to a default page size.
func (s *AccountActionService) ListAuditRecords(ctx context.Context, userID int64, limit int) ([]audit.Record, error) {
	if err := account.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultAuditListLimit
	}

	records, err := s.audit.ListByUser(ctx, userID, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list audit records",
			slog.String("operation", "ListAuditRecords"),
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return records, nil
}

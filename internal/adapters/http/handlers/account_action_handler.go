package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/account-action-service/internal/platform/logging"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

const userIDParam = "userId"

// AccountActionHandler handles the user account-action endpoints.
type AccountActionHandler struct {
	svc ports.AccountActionService
}

// NewAccountActionHandler creates a new AccountActionHandler.
func NewAccountActionHandler(svc ports.AccountActionService) *AccountActionHandler {
	return &AccountActionHandler{svc: svc}
}

// RemoveLinkedAccounts handles DELETE /api/v1/users/{userId}/linked-accounts.
// Responds 200 with the audit record, or 409 with the failed actions when
// part of the batch failed.
func (h *AccountActionHandler) RemoveLinkedAccounts(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, userIDParam, "user_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ctx := logging.WithAttrs(r.Context(), slog.Int64("user_id", userID))

	result, err := h.svc.RemoveLinkedAccounts(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "removing linked accounts failed",
			slog.String("operation", "AccountActionHandler.RemoveLinkedAccounts"),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAuditRecordResponse(&result.Value))
}

// RemoveBankConnections handles DELETE /api/v1/users/{userId}/bank-connections.
func (h *AccountActionHandler) RemoveBankConnections(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, userIDParam, "user_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ctx := logging.WithAttrs(r.Context(), slog.Int64("user_id", userID))

	result, err := h.svc.RemoveBankConnections(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "removing bank connections failed",
			slog.String("operation", "AccountActionHandler.RemoveBankConnections"),
			slog.Any("error", err),
		)
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToRemovedBankConnectionsResponse(userID, result.Value))
}

// ListAuditRecords handles GET /api/v1/users/{userId}/audit-records.
func (h *AccountActionHandler) ListAuditRecords(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, userIDParam, "user_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	q, err := dto.ParseAuditListQuery(r.URL.Query())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	records, err := h.svc.ListAuditRecords(r.Context(), userID, q.Limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAuditRecordListResponse(records))
}

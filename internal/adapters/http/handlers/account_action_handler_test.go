package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/account-action-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
	"github.com/jsamuelsen11/account-action-service/internal/domain/action"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
	"github.com/jsamuelsen11/account-action-service/mocks"
)

func newAccountActionHandler(t *testing.T) (*handlers.AccountActionHandler, *mocks.MockAccountActionService) {
	t.Helper()
	svc := mocks.NewMockAccountActionService(t)
	return handlers.NewAccountActionHandler(svc), svc
}

func userRequest(method, path, userID string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return withChiParams(req, map[string]string{"userId": userID})
}

func successRecord() audit.Record {
	return audit.Record{
		ID:         "rec-1",
		UserID:     42,
		EventType:  "REMOVE_LINKED_ACCOUNTS_SUCCESS",
		Successful: true,
		EventUUID:  "corr-1",
		CreatedAt:  testTime,
	}
}

// --- RemoveLinkedAccounts ---

func TestRemoveLinkedAccounts_Success(t *testing.T) {
	t.Parallel()
	h, svc := newAccountActionHandler(t)

	svc.EXPECT().RemoveLinkedAccounts(mock.Anything, int64(42)).
		Return(action.Success[audit.Record]{Value: successRecord()}, nil)

	rec := httptest.NewRecorder()
	h.RemoveLinkedAccounts(rec, userRequest(http.MethodDelete, "/api/v1/users/42/linked-accounts", "42"))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.AuditRecordResponse](t, rec)
	if resp.ID != "rec-1" || !resp.Successful || resp.EventType != "REMOVE_LINKED_ACCOUNTS_SUCCESS" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRemoveLinkedAccounts_PartialFailureIs409(t *testing.T) {
	t.Parallel()
	h, svc := newAccountActionHandler(t)

	bf := action.NewBatchFailure(action.CategoryRemove, 4, []*action.ActionError{
		action.NewActionError("delete-crm-user", action.CategoryRemove, errors.New("network down")),
		action.NewActionError("delete-marketing-profile", action.CategoryRemove, errors.New("timeout")),
	})
	svc.EXPECT().RemoveLinkedAccounts(mock.Anything, int64(42)).
		Return(action.Success[audit.Record]{}, bf)

	rec := httptest.NewRecorder()
	h.RemoveLinkedAccounts(rec, userRequest(http.MethodDelete, "/api/v1/users/42/linked-accounts", "42"))

	requireStatus(t, rec, http.StatusConflict)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q", ct)
	}
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.FailedActions) != 2 ||
		resp.FailedActions[0].Name != "delete-crm-user" ||
		resp.FailedActions[1].Name != "delete-marketing-profile" {
		t.Errorf("FailedActions = %+v", resp.FailedActions)
	}
}

func TestRemoveLinkedAccounts_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "user not found", err: fmt.Errorf("user 42: %w", domain.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "unexpected error", err: errors.New("disk full"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newAccountActionHandler(t)
			svc.EXPECT().RemoveLinkedAccounts(mock.Anything, int64(42)).
				Return(action.Success[audit.Record]{}, tt.err)

			rec := httptest.NewRecorder()
			h.RemoveLinkedAccounts(rec, userRequest(http.MethodDelete, "/api/v1/users/42/linked-accounts", "42"))

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestRemoveLinkedAccounts_InvalidUserID(t *testing.T) {
	t.Parallel()
	h, _ := newAccountActionHandler(t)

	rec := httptest.NewRecorder()
	h.RemoveLinkedAccounts(rec, userRequest(http.MethodDelete, "/api/v1/users/abc/linked-accounts", "abc"))

	requireStatus(t, rec, http.StatusBadRequest)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 1 || resp.Errors[0].Location != "user_id" {
		t.Errorf("Errors = %+v, want one user_id entry", resp.Errors)
	}
}

// --- RemoveBankConnections ---

func TestRemoveBankConnections_Success(t *testing.T) {
	t.Parallel()
	h, svc := newAccountActionHandler(t)

	conns := []account.BankConnection{
		{ID: "c1", UserID: 7, Institution: "First Bank", Status: "active"},
		{ID: "c2", UserID: 7, Institution: "Credit Union", Status: "active"},
	}
	svc.EXPECT().RemoveBankConnections(mock.Anything, int64(7)).
		Return(action.Success[[]account.BankConnection]{Value: conns}, nil)

	rec := httptest.NewRecorder()
	h.RemoveBankConnections(rec, userRequest(http.MethodDelete, "/api/v1/users/7/bank-connections", "7"))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.RemovedBankConnectionsResponse](t, rec)
	if resp.UserID != 7 || resp.Count != 2 || resp.Removed[0].ID != "c1" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRemoveBankConnections_FailureIs502(t *testing.T) {
	t.Parallel()
	h, svc := newAccountActionHandler(t)

	err := fmt.Errorf("%w: %w", account.ErrBankConnectionRemoval, errors.New("network down"))
	svc.EXPECT().RemoveBankConnections(mock.Anything, int64(7)).
		Return(action.Success[[]account.BankConnection]{}, err)

	rec := httptest.NewRecorder()
	h.RemoveBankConnections(rec, userRequest(http.MethodDelete, "/api/v1/users/7/bank-connections", "7"))

	requireStatus(t, rec, http.StatusBadGateway)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Detail != "bank connection removal failed: network down" {
		t.Errorf("Detail = %q", resp.Detail)
	}
}

func TestRemoveBankConnections_InvalidUserID(t *testing.T) {
	t.Parallel()
	h, _ := newAccountActionHandler(t)

	rec := httptest.NewRecorder()
	h.RemoveBankConnections(rec, userRequest(http.MethodDelete, "/api/v1/users/x/bank-connections", "x"))

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- ListAuditRecords ---

func TestListAuditRecords_Success(t *testing.T) {
	t.Parallel()
	h, svc := newAccountActionHandler(t)

	svc.EXPECT().ListAuditRecords(mock.Anything, int64(42), 5).
		Return([]audit.Record{successRecord()}, nil)

	rec := httptest.NewRecorder()
	h.ListAuditRecords(rec, userRequest(http.MethodGet, "/api/v1/users/42/audit-records?limit=5", "42"))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.AuditRecordListResponse](t, rec)
	if resp.Count != 1 || resp.Records[0].EventUUID != "corr-1" {
		t.Errorf("response = %+v", resp)
	}
}

func TestListAuditRecords_DefaultLimit(t *testing.T) {
	t.Parallel()
	h, svc := newAccountActionHandler(t)

	svc.EXPECT().ListAuditRecords(mock.Anything, int64(42), 0).Return([]audit.Record{}, nil)

	rec := httptest.NewRecorder()
	h.ListAuditRecords(rec, userRequest(http.MethodGet, "/api/v1/users/42/audit-records", "42"))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.AuditRecordListResponse](t, rec)
	if resp.Records == nil || resp.Count != 0 {
		t.Errorf("response = %+v, want empty list", resp)
	}
}

func TestListAuditRecords_InvalidLimit(t *testing.T) {
	t.Parallel()
	h, _ := newAccountActionHandler(t)

	rec := httptest.NewRecorder()
	h.ListAuditRecords(rec, userRequest(http.MethodGet, "/api/v1/users/42/audit-records?limit=abc", "42"))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestListAuditRecords_ServiceError(t *testing.T) {
	t.Parallel()
	h, svc := newAccountActionHandler(t)

	svc.EXPECT().ListAuditRecords(mock.Anything, int64(42), 0).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"user_id": "must be positive"}})

	rec := httptest.NewRecorder()
	h.ListAuditRecords(rec, userRequest(http.MethodGet, "/api/v1/users/42/audit-records", "42"))

	requireStatus(t, rec, http.StatusBadRequest)
}

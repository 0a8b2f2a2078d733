package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func failedRecord() audit.Record {
	return audit.Record{
		ID:         "rec-1",
		UserID:     42,
		EventType:  "REMOVE_LINKED_ACCOUNTS_FAILURE",
		Successful: false,
		Message:    "1 of 4 remove actions failed: delete-crm-user",
		EventUUID:  "corr-1",
		CreatedAt:  testTime,
	}
}

func TestToAuditRecordResponse(t *testing.T) {
	t.Parallel()

	rec := failedRecord()
	got := dto.ToAuditRecordResponse(&rec)

	if got.ID != "rec-1" || got.UserID != 42 || got.EventUUID != "corr-1" {
		t.Errorf("identity = %+v", got)
	}
	if got.EventType != "REMOVE_LINKED_ACCOUNTS_FAILURE" || got.Successful {
		t.Errorf("event = (%q, %v)", got.EventType, got.Successful)
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", got.CreatedAt)
	}
}

func TestToAuditRecordResponse_SuccessOmitsMessage(t *testing.T) {
	t.Parallel()

	rec := audit.Record{ID: "rec-2", EventType: "REMOVE_LINKED_ACCOUNTS_SUCCESS", Successful: true, CreatedAt: testTime}
	b, err := json.Marshal(dto.ToAuditRecordResponse(&rec))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := m["message"]; ok {
		t.Errorf("message present in %s, want omitted", b)
	}
	if m["successful"] != true {
		t.Errorf("successful = %v, want true", m["successful"])
	}
}

func TestToAuditRecordListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToAuditRecordListResponse([]audit.Record{failedRecord(), {ID: "rec-0"}})
	if got.Count != 2 || got.Records[0].ID != "rec-1" || got.Records[1].ID != "rec-0" {
		t.Errorf("ToAuditRecordListResponse() = %+v", got)
	}

	empty := dto.ToAuditRecordListResponse(nil)
	if empty.Records == nil || empty.Count != 0 {
		t.Errorf("empty list = %+v, want non-nil records and zero count", empty)
	}
}

func TestToRemovedBankConnectionsResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToRemovedBankConnectionsResponse(7, []account.BankConnection{
		{ID: "c1", UserID: 7, Institution: "First Bank", Status: "active"},
		{ID: "c2", UserID: 7, Institution: "Credit Union", Status: "revoked"},
	})

	if got.UserID != 7 || got.Count != 2 {
		t.Fatalf("header = (%d, %d), want (7, 2)", got.UserID, got.Count)
	}
	if got.Removed[1].ID != "c2" || got.Removed[1].Institution != "Credit Union" || got.Removed[1].Status != "revoked" {
		t.Errorf("Removed[1] = %+v", got.Removed[1])
	}

	b, err := json.Marshal(dto.ToRemovedBankConnectionsResponse(7, nil))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"user_id":7,"removed":[],"count":0}` {
		t.Errorf("empty response = %s", b)
	}
}

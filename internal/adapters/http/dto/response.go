// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
)

// AuditRecordResponse represents one audit record in HTTP responses.
type AuditRecordResponse struct {
	ID         string `json:"id"`
	UserID     int64  `json:"user_id"`
	EventType  string `json:"event_type"`
	Successful bool   `json:"successful"`
	Message    string `json:"message,omitempty"`
	EventUUID  string `json:"event_uuid"`
	CreatedAt  string `json:"created_at"`
}

// AuditRecordListResponse represents a list of audit records.
type AuditRecordListResponse struct {
	Records []AuditRecordResponse `json:"records"`
	Count   int                   `json:"count"`
}

// ToAuditRecordResponse converts a domain audit record to its HTTP form.
func ToAuditRecordResponse(r *audit.Record) AuditRecordResponse {
	return AuditRecordResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		EventType:  r.EventType.String(),
		Successful: r.Successful,
		Message:    r.Message,
		EventUUID:  r.EventUUID,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

// ToAuditRecordListResponse converts audit records, keeping their order.
func ToAuditRecordListResponse(records []audit.Record) AuditRecordListResponse {
	items := make([]AuditRecordResponse, len(records))
	for i := range records {
		items[i] = ToAuditRecordResponse(&records[i])
	}
	return AuditRecordListResponse{
		Records: items,
		Count:   len(items),
	}
}

// BankConnectionResponse represents one removed bank connection.
type BankConnectionResponse struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Status      string `json:"status"`
}

// RemovedBankConnectionsResponse is returned after every connection of a
// user was removed.
type RemovedBankConnectionsResponse struct {
	UserID  int64                    `json:"user_id"`
	Removed []BankConnectionResponse `json:"removed"`
	Count   int                      `json:"count"`
}

// ToRemovedBankConnectionsResponse converts the removed connections.
func ToRemovedBankConnectionsResponse(userID int64, conns []account.BankConnection) RemovedBankConnectionsResponse {
	items := make([]BankConnectionResponse, len(conns))
	for i, c := range conns {
		items[i] = BankConnectionResponse{
			ID:          c.ID,
			Institution: c.Institution,
			Status:      c.Status,
		}
	}
	return RemovedBankConnectionsResponse{
		UserID:  userID,
		Removed: items,
		Count:   len(items),
	}
}

// Package audit defines the audit record written once per batch of account
// actions, and the event naming that tags it as a success or a failure.
package audit

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/account-action-service/internal/domain"
)

const (
	successSuffix = "_SUCCESS"
	failureSuffix = "_FAILURE"
)

// EventType tags an audit record with the event it describes and whether
// that event succeeded, e.g. "REMOVE_LINKED_ACCOUNTS_FAILURE".
type EventType string

// String implements fmt.Stringer.
func (t EventType) String() string {
	return string(t)
}

// Event names a batch of actions for audit purposes. CorrelationID ties the
// resulting record to the request that triggered it; an empty value is
// replaced with a fresh UUID by WithCorrelation.
type Event struct {
	Name          string
	CorrelationID string
}

// SuccessType returns the event type used when the batch succeeded.
func (e Event) SuccessType() EventType {
	return EventType(strings.ToUpper(e.Name) + successSuffix)
}

// FailureType returns the event type used when the batch failed.
func (e Event) FailureType() EventType {
	return EventType(strings.ToUpper(e.Name) + failureSuffix)
}

// WithCorrelation returns a copy of e with a correlation ID, generating one
// when none is set.
func (e Event) WithCorrelation() Event {
	if strings.TrimSpace(e.CorrelationID) == "" {
		e.CorrelationID = uuid.NewString()
	}
	return e
}

// Validate checks that the event can be turned into an event type.
func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return &domain.ValidationError{Fields: map[string]string{"event": "is required"}}
	}
	return nil
}

// Record is one durable audit log entry. The audit log assigns ID and
// CreatedAt when the record is persisted.
type Record struct {
	ID         string
	UserID     int64
	EventType  EventType
	Successful bool
	Message    string
	EventUUID  string
	CreatedAt  time.Time
}

// NewRecord builds the record describing one batch outcome for the owner.
func NewRecord(userID int64, event Event, successful bool, message string) Record {
	eventType := event.SuccessType()
	if !successful {
		eventType = event.FailureType()
	}
	return Record{
		UserID:     userID,
		EventType:  eventType,
		Successful: successful,
		Message:    message,
		EventUUID:  event.CorrelationID,
	}
}

// Summary renders the record in a single line for logs and CLI output.
func (r Record) Summary() string {
	status := "ok"
	if !r.Successful {
		status = "failed"
	}
	return fmt.Sprintf("%s user=%d event=%s status=%s", r.ID, r.UserID, r.EventType, status)
}

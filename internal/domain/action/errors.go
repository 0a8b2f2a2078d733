package action

import (
	"errors"
	"fmt"
	"strings"
)

// ActionError reports that one action's wrapped operation failed. It keeps
// the originating action's name and category so a batch can report which
// step broke.
type ActionError struct {
	Name     string
	Category Category
	Message  string
	Err      error
}

// NewActionError wraps cause with the identity of the action that produced it.
func NewActionError(name string, category Category, cause error) *ActionError {
	msg := "unknown error"
	if cause != nil {
		msg = cause.Error()
	}
	return &ActionError{
		Name:     name,
		Category: category,
		Message:  msg,
		Err:      cause,
	}
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s action %q failed: %s", e.Category, e.Name, e.Message)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// BatchFailure aggregates every failed action of one batch. Errors keeps the
// input order of the actions, and FailedActions is their names joined with
// commas (duplicates included).
type BatchFailure struct {
	Category      Category
	Errors        []*ActionError
	FailedActions string
	Total         int
	Message       string
}

// NewBatchFailure builds the aggregate for a batch of total actions. It
// returns nil when errs is empty: a batch without failures has no failure.
func NewBatchFailure(category Category, total int, errs []*ActionError) *BatchFailure {
	if len(errs) == 0 {
		return nil
	}

	names := make([]string, len(errs))
	for i, e := range errs {
		names[i] = e.Name
	}
	failed := strings.Join(names, ",")

	return &BatchFailure{
		Category:      category,
		Errors:        errs,
		FailedActions: failed,
		Total:         total,
		Message:       fmt.Sprintf("%d of %d %s actions failed: %s", len(errs), total, category, failed),
	}
}

func (e *BatchFailure) Error() string {
	return e.Message
}

// Unwrap exposes the nested action errors to errors.Is and errors.As.
func (e *BatchFailure) Unwrap() []error {
	out := make([]error, len(e.Errors))
	for i, ae := range e.Errors {
		out[i] = ae
	}
	return out
}

// AsBatchFailure is a convenience around errors.As for callers that only
// need to know whether err carries a BatchFailure.
func AsBatchFailure(err error) (*BatchFailure, bool) {
	var bf *BatchFailure
	if errors.As(err, &bf) {
		return bf, true
	}
	return nil, false
}

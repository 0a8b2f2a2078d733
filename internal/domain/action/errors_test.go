package action_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/domain/action"
)

func TestNewBatchFailure_NoErrors(t *testing.T) {
	t.Parallel()

	if bf := action.NewBatchFailure(action.CategoryRemove, 3, nil); bf != nil {
		t.Fatalf("NewBatchFailure(no errors) = %+v, want nil", bf)
	}
}

func TestNewBatchFailure_AggregatesInOrder(t *testing.T) {
	t.Parallel()

	errs := []*action.ActionError{
		action.NewActionError("first", action.CategoryRemove, errors.New("network down")),
		action.NewActionError("third", action.CategoryRemove, errors.New("timeout")),
	}

	bf := action.NewBatchFailure(action.CategoryRemove, 3, errs)

	if bf.FailedActions != "first,third" {
		t.Errorf("FailedActions = %q, want %q", bf.FailedActions, "first,third")
	}
	if len(bf.Errors) != 2 || bf.Errors[0].Name != "first" || bf.Errors[1].Name != "third" {
		t.Errorf("Errors order = %v, want [first third]", bf.Errors)
	}
	if bf.Category != action.CategoryRemove {
		t.Errorf("Category = %q, want remove", bf.Category)
	}
	want := "2 of 3 remove actions failed: first,third"
	if bf.Error() != want {
		t.Errorf("Error() = %q, want %q", bf.Error(), want)
	}
}

func TestNewBatchFailure_DuplicateNamesKept(t *testing.T) {
	t.Parallel()

	errs := []*action.ActionError{
		action.NewActionError("dup", action.CategoryUpdate, errors.New("a")),
		action.NewActionError("dup", action.CategoryUpdate, errors.New("b")),
	}

	bf := action.NewBatchFailure(action.CategoryUpdate, 2, errs)
	if bf.FailedActions != "dup,dup" {
		t.Errorf("FailedActions = %q, want %q", bf.FailedActions, "dup,dup")
	}
}

func TestBatchFailure_UnwrapReachesNestedErrors(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("crm: %w", domain.ErrUnavailable)
	bf := action.NewBatchFailure(action.CategoryRemove, 1, []*action.ActionError{
		action.NewActionError("delete-crm-user", action.CategoryRemove, cause),
	})

	if !errors.Is(bf, domain.ErrUnavailable) {
		t.Error("errors.Is(BatchFailure, ErrUnavailable) = false, want true")
	}

	var aerr *action.ActionError
	if !errors.As(bf, &aerr) {
		t.Fatal("errors.As(BatchFailure, *ActionError) = false")
	}
	if aerr.Name != "delete-crm-user" {
		t.Errorf("nested ActionError.Name = %q", aerr.Name)
	}
}

func TestAsBatchFailure(t *testing.T) {
	t.Parallel()

	bf := action.NewBatchFailure(action.CategoryRemove, 1, []*action.ActionError{
		action.NewActionError("x", action.CategoryRemove, errors.New("boom")),
	})
	wrapped := fmt.Errorf("removing linked accounts: %w", bf)

	got, ok := action.AsBatchFailure(wrapped)
	if !ok || got != bf {
		t.Errorf("AsBatchFailure(wrapped) = (%v, %v), want original failure", got, ok)
	}

	if _, ok := action.AsBatchFailure(errors.New("plain")); ok {
		t.Error("AsBatchFailure(plain error) = true, want false")
	}
}

func TestActionError_NilCause(t *testing.T) {
	t.Parallel()

	e := action.NewActionError("x", action.CategoryCreate, nil)
	if e.Message != "unknown error" {
		t.Errorf("Message = %q, want %q", e.Message, "unknown error")
	}
	if e.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", e.Unwrap())
	}
}

package batch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/account-action-service/internal/app/batch"
	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/domain/action"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
	"github.com/jsamuelsen11/account-action-service/mocks"
)

var testEvent = audit.Event{Name: "REMOVE_LINKED_ACCOUNTS", CorrelationID: "corr-1"}

// fakeAuditLog records every Create call. Like a database driver, it refuses
// to write under a context that is already done.
type fakeAuditLog struct {
	mu          sync.Mutex
	records     []audit.Record
	err         error
	sawDeadline bool
}

func (f *fakeAuditLog) Create(ctx context.Context, r audit.Record) (audit.Record, error) {
	if err := ctx.Err(); err != nil {
		return audit.Record{}, fmt.Errorf("inserting audit record for user %d: %w", r.UserID, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, f.sawDeadline = ctx.Deadline()
	f.records = append(f.records, r)
	if f.err != nil {
		return audit.Record{}, f.err
	}
	r.ID = fmt.Sprintf("rec-%d", len(f.records))
	r.CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	return r, nil
}

func (f *fakeAuditLog) calls() []audit.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]audit.Record(nil), f.records...)
}

func succeeding(name string, ran *atomic.Int32) action.Runner {
	return action.New(name, action.CategoryRemove, func(_ context.Context) (struct{}, error) {
		if ran != nil {
			ran.Add(1)
		}
		return struct{}{}, nil
	})
}

func failing(name, msg string, ran *atomic.Int32) action.Runner {
	return action.New(name, action.CategoryRemove, func(_ context.Context) (struct{}, error) {
		if ran != nil {
			ran.Add(1)
		}
		return struct{}{}, errors.New(msg)
	})
}

func TestProcess_AllSucceed(t *testing.T) {
	t.Parallel()

	log := &fakeAuditLog{}
	p := batch.New(log)

	var ran atomic.Int32
	got, err := p.Process(context.Background(), action.CategoryRemove, []action.Runner{
		succeeding("first", &ran),
		succeeding("second", &ran),
	}, 42, testEvent)
	if err != nil {
		t.Fatalf("Process() error = %v, want nil", err)
	}

	if ran.Load() != 2 {
		t.Errorf("ran %d actions, want 2", ran.Load())
	}
	calls := log.calls()
	if len(calls) != 1 {
		t.Fatalf("audit Create called %d times, want 1", len(calls))
	}
	if !calls[0].Successful || calls[0].EventType != "REMOVE_LINKED_ACCOUNTS_SUCCESS" {
		t.Errorf("audit record = %+v, want successful REMOVE_LINKED_ACCOUNTS_SUCCESS", calls[0])
	}
	if calls[0].UserID != 42 || calls[0].EventUUID != "corr-1" {
		t.Errorf("audit record owner/uuid = (%d, %q), want (42, corr-1)", calls[0].UserID, calls[0].EventUUID)
	}
	if got.Value.ID != "rec-1" || got.Value.CreatedAt.IsZero() {
		t.Errorf("Success.Value = %+v, want persisted record", got.Value)
	}
	if got.Kind() != action.KindSuccess {
		t.Errorf("Kind() = %q, want success", got.Kind())
	}
}

func TestProcess_PartialFailure(t *testing.T) {
	t.Parallel()

	log := &fakeAuditLog{}
	p := batch.New(log)

	var ran atomic.Int32
	_, err := p.Process(context.Background(), action.CategoryRemove, []action.Runner{
		failing("first", "network down", &ran),
		succeeding("second", &ran),
	}, 42, testEvent)

	bf, ok := action.AsBatchFailure(err)
	if !ok {
		t.Fatalf("Process() error = %v, want *BatchFailure", err)
	}
	if bf.FailedActions != "first" {
		t.Errorf("FailedActions = %q, want %q", bf.FailedActions, "first")
	}
	if len(bf.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(bf.Errors))
	}
	if bf.Errors[0].Message != "network down" {
		t.Errorf("Errors[0].Message = %q, want %q", bf.Errors[0].Message, "network down")
	}
	if ran.Load() != 2 {
		t.Errorf("ran %d actions, want 2 (no short-circuit)", ran.Load())
	}

	calls := log.calls()
	if len(calls) != 1 {
		t.Fatalf("audit Create called %d times, want 1", len(calls))
	}
	if calls[0].Successful || calls[0].EventType != "REMOVE_LINKED_ACCOUNTS_FAILURE" {
		t.Errorf("audit record = %+v, want failed REMOVE_LINKED_ACCOUNTS_FAILURE", calls[0])
	}
	if calls[0].Message != bf.Message {
		t.Errorf("audit message = %q, want %q", calls[0].Message, bf.Message)
	}
}

func TestProcess_AllFail(t *testing.T) {
	t.Parallel()

	log := &fakeAuditLog{}
	p := batch.New(log)

	_, err := p.Process(context.Background(), action.CategoryRemove, []action.Runner{
		failing("a", "x", nil),
		failing("b", "y", nil),
		failing("c", "z", nil),
	}, 7, testEvent)

	bf, ok := action.AsBatchFailure(err)
	if !ok {
		t.Fatalf("Process() error = %v, want *BatchFailure", err)
	}
	if bf.FailedActions != "a,b,c" {
		t.Errorf("FailedActions = %q, want %q", bf.FailedActions, "a,b,c")
	}
	if bf.Error() != "3 of 3 remove actions failed: a,b,c" {
		t.Errorf("Error() = %q", bf.Error())
	}
	if n := len(log.calls()); n != 1 {
		t.Errorf("audit Create called %d times, want 1", n)
	}
}

func TestProcess_IndependenceAndSingleWrite(t *testing.T) {
	t.Parallel()

	// Every combination of N actions with K failures runs all N and writes once.
	for n := 0; n <= 5; n++ {
		for k := 0; k <= n; k++ {
			t.Run(fmt.Sprintf("N=%d_K=%d", n, k), func(t *testing.T) {
				t.Parallel()

				log := &fakeAuditLog{}
				p := batch.New(log, batch.WithMaxWorkers(2))

				var ran atomic.Int32
				actions := make([]action.Runner, 0, n)
				wantNames := ""
				for i := range n {
					name := fmt.Sprintf("act-%d", i)
					if i < k {
						actions = append(actions, failing(name, "boom", &ran))
						if wantNames != "" {
							wantNames += ","
						}
						wantNames += name
						continue
					}
					actions = append(actions, succeeding(name, &ran))
				}

				_, err := p.Process(context.Background(), action.CategoryRemove, actions, 1, testEvent)

				if int(ran.Load()) != n {
					t.Errorf("ran %d actions, want %d", ran.Load(), n)
				}
				calls := log.calls()
				if len(calls) != 1 {
					t.Fatalf("audit Create called %d times, want 1", len(calls))
				}

				if k == 0 {
					if err != nil {
						t.Errorf("Process() error = %v, want nil", err)
					}
					if !calls[0].Successful {
						t.Error("audit record Successful = false, want true")
					}
					return
				}

				bf, ok := action.AsBatchFailure(err)
				if !ok {
					t.Fatalf("Process() error = %v, want *BatchFailure", err)
				}
				if bf.FailedActions != wantNames {
					t.Errorf("FailedActions = %q, want %q", bf.FailedActions, wantNames)
				}
				if calls[0].Successful {
					t.Error("audit record Successful = true, want false")
				}
			})
		}
	}
}

func TestProcess_FailuresFollowInputOrder(t *testing.T) {
	t.Parallel()

	slowFail := action.New("slow", action.CategoryRemove, func(_ context.Context) (struct{}, error) {
		time.Sleep(40 * time.Millisecond)
		return struct{}{}, errors.New("slow failure")
	})
	fastFail := action.New("fast", action.CategoryRemove, func(_ context.Context) (struct{}, error) {
		return struct{}{}, errors.New("fast failure")
	})

	p := batch.New(&fakeAuditLog{})
	_, err := p.Process(context.Background(), action.CategoryRemove, []action.Runner{slowFail, fastFail}, 1, testEvent)

	bf, ok := action.AsBatchFailure(err)
	if !ok {
		t.Fatalf("Process() error = %v, want *BatchFailure", err)
	}
	if bf.FailedActions != "slow,fast" {
		t.Errorf("FailedActions = %q, want %q (input order)", bf.FailedActions, "slow,fast")
	}
}

func TestProcess_NestedErrorsCarryIdentity(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("crm: %w", domain.ErrUnavailable)
	crm := action.New("delete-crm-user", action.CategoryRemove, func(_ context.Context) (string, error) {
		return "", cause
	})
	rewards := action.New("delete-rewards-profile", action.CategoryRemove, func(_ context.Context) (int, error) {
		return 0, errors.New("rewards down")
	})

	p := batch.New(&fakeAuditLog{})
	_, err := p.Process(context.Background(), action.CategoryRemove, []action.Runner{crm, rewards}, 1, testEvent)

	bf, ok := action.AsBatchFailure(err)
	if !ok {
		t.Fatalf("Process() error = %v, want *BatchFailure", err)
	}
	for i, want := range []string{"delete-crm-user", "delete-rewards-profile"} {
		if bf.Errors[i].Name != want || bf.Errors[i].Category != action.CategoryRemove {
			t.Errorf("Errors[%d] = (%q, %q), want (%q, remove)", i, bf.Errors[i].Name, bf.Errors[i].Category, want)
		}
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Error("errors.Is(err, ErrUnavailable) = false, want original cause reachable")
	}
}

func TestProcess_EmptyBatchSucceeds(t *testing.T) {
	t.Parallel()

	log := &fakeAuditLog{}
	p := batch.New(log)

	got, err := p.Process(context.Background(), action.CategoryRemove, nil, 9, testEvent)
	if err != nil {
		t.Fatalf("Process(empty) error = %v, want nil", err)
	}
	if !got.Value.Successful {
		t.Error("record Successful = false, want true")
	}
	if n := len(log.calls()); n != 1 {
		t.Errorf("audit Create called %d times, want 1", n)
	}
}

func TestProcess_AuditWriteAfterAllActionsSettle(t *testing.T) {
	t.Parallel()

	var settled atomic.Int32
	auditLog := mocks.NewMockAuditLog(t)
	auditLog.EXPECT().Create(mock.Anything, mock.AnythingOfType("audit.Record")).
		RunAndReturn(func(_ context.Context, r audit.Record) (audit.Record, error) {
			if got := settled.Load(); got != 3 {
				t.Errorf("audit written after %d settled actions, want 3", got)
			}
			return r, nil
		}).Once()

	slow := func(name string) action.Runner {
		return action.New(name, action.CategoryUpdate, func(_ context.Context) (struct{}, error) {
			time.Sleep(10 * time.Millisecond)
			settled.Add(1)
			return struct{}{}, nil
		})
	}

	p := batch.New(auditLog)
	if _, err := p.Process(context.Background(), action.CategoryUpdate,
		[]action.Runner{slow("a"), slow("b"), slow("c")}, 1, testEvent); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
}

func TestProcess_AuditWriteFailureOnSuccessPath(t *testing.T) {
	t.Parallel()

	writeErr := errors.New("disk full")
	p := batch.New(&fakeAuditLog{err: writeErr})

	_, err := p.Process(context.Background(), action.CategoryRemove, []action.Runner{succeeding("a", nil)}, 1, testEvent)

	if !errors.Is(err, batch.ErrAuditWrite) {
		t.Errorf("error = %v, want ErrAuditWrite", err)
	}
	if !errors.Is(err, writeErr) {
		t.Errorf("error = %v, want underlying write error", err)
	}
	if _, ok := action.AsBatchFailure(err); ok {
		t.Error("success path audit failure must not look like a BatchFailure")
	}
}

func TestProcess_AuditWriteFailureOnFailurePath(t *testing.T) {
	t.Parallel()

	p := batch.New(&fakeAuditLog{err: errors.New("disk full")})

	_, err := p.Process(context.Background(), action.CategoryRemove, []action.Runner{failing("a", "boom", nil)}, 1, testEvent)

	if !errors.Is(err, batch.ErrAuditWrite) {
		t.Errorf("error = %v, want ErrAuditWrite", err)
	}
	bf, ok := action.AsBatchFailure(err)
	if !ok || bf.FailedActions != "a" {
		t.Errorf("AsBatchFailure = (%v, %v), want failure naming a", bf, ok)
	}
}

func TestProcess_GeneratesCorrelationID(t *testing.T) {
	t.Parallel()

	log := &fakeAuditLog{}
	p := batch.New(log)

	if _, err := p.Process(context.Background(), action.CategoryRemove, nil, 1, audit.Event{Name: "X"}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if log.calls()[0].EventUUID == "" {
		t.Error("EventUUID empty, want generated correlation id")
	}
}

func TestProcess_InvalidInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category action.Category
		event    audit.Event
	}{
		{name: "unknown category", category: "purge", event: testEvent},
		{name: "missing event name", category: action.CategoryRemove, event: audit.Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			auditLog := mocks.NewMockAuditLog(t)
			var ran atomic.Int32
			p := batch.New(auditLog)

			_, err := p.Process(context.Background(), tt.category, []action.Runner{succeeding("a", &ran)}, 1, tt.event)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
			if ran.Load() != 0 {
				t.Error("actions ran despite invalid input")
			}
		})
	}
}

func TestProcess_TimeoutReachesActions(t *testing.T) {
	t.Parallel()

	var sawDeadline atomic.Bool
	var ran atomic.Int32
	blocking := func(name string) action.Runner {
		return action.New(name, action.CategoryRemove, func(ctx context.Context) (struct{}, error) {
			ran.Add(1)
			if _, ok := ctx.Deadline(); ok {
				sawDeadline.Store(true)
			}
			<-ctx.Done()
			return struct{}{}, ctx.Err()
		})
	}

	log := &fakeAuditLog{}
	p := batch.New(log, batch.WithTimeout(20*time.Millisecond), batch.WithMaxWorkers(1))

	_, err := p.Process(context.Background(), action.CategoryRemove,
		[]action.Runner{blocking("a"), blocking("b")}, 1, testEvent)

	if !sawDeadline.Load() {
		t.Error("actions did not receive a deadline")
	}
	if ran.Load() != 2 {
		t.Errorf("ran %d actions, want 2", ran.Load())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want DeadlineExceeded reachable", err)
	}
	// The audit write is not bound by the expired batch deadline.
	if n := len(log.calls()); n != 1 {
		t.Errorf("audit Create called %d times, want 1", n)
	}
}

func TestProcess_AuditWrittenWhenCallerDeadlinePassesMidBatch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var deleted atomic.Bool
	slowDelete := action.New("delete-crm-user", action.CategoryRemove, func(_ context.Context) (struct{}, error) {
		time.Sleep(50 * time.Millisecond)
		deleted.Store(true)
		return struct{}{}, nil
	})

	log := &fakeAuditLog{}
	p := batch.New(log)

	got, err := p.Process(ctx, action.CategoryRemove, []action.Runner{slowDelete}, 7, testEvent)
	if err != nil {
		t.Fatalf("Process() error = %v, want nil", err)
	}
	if !deleted.Load() {
		t.Fatal("external delete did not run")
	}
	if ctx.Err() == nil {
		t.Fatal("caller context still live, test did not exercise cancellation")
	}

	calls := log.calls()
	if len(calls) != 1 || !calls[0].Successful || calls[0].UserID != 7 {
		t.Fatalf("audit records = %+v, want one successful record for user 7", calls)
	}
	if got.Value.ID == "" {
		t.Error("Success.Value.ID empty, want persisted record")
	}
}

func TestProcess_FailureAuditWrittenAfterCallerCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	cancelsCaller := action.New("delete-rewards-profile", action.CategoryRemove, func(_ context.Context) (struct{}, error) {
		cancel()
		return struct{}{}, errors.New("client went away")
	})

	log := &fakeAuditLog{}
	p := batch.New(log, batch.WithAuditTimeout(time.Second))

	_, err := p.Process(ctx, action.CategoryRemove, []action.Runner{cancelsCaller}, 3, testEvent)

	if errors.Is(err, batch.ErrAuditWrite) {
		t.Fatalf("Process() error = %v, want audit write to succeed", err)
	}
	if _, ok := action.AsBatchFailure(err); !ok {
		t.Fatalf("Process() error = %v, want *BatchFailure", err)
	}
	calls := log.calls()
	if len(calls) != 1 || calls[0].Successful {
		t.Fatalf("audit records = %+v, want one failure record", calls)
	}

	log.mu.Lock()
	defer log.mu.Unlock()
	if !log.sawDeadline {
		t.Error("audit write context has no deadline, want it bounded")
	}
}

func TestProcess_TypedNilActionSettlesAsFailure(t *testing.T) {
	t.Parallel()

	var missing *action.Action[struct{}]
	var ran atomic.Int32

	log := &fakeAuditLog{}
	p := batch.New(log)

	_, err := p.Process(context.Background(), action.CategoryRemove,
		[]action.Runner{succeeding("first", &ran), missing}, 1, testEvent)

	bf, ok := action.AsBatchFailure(err)
	if !ok {
		t.Fatalf("Process() error = %v, want *BatchFailure", err)
	}
	if len(bf.Errors) != 1 || !errors.Is(bf.Errors[0], action.ErrNilAction) {
		t.Fatalf("Errors = %v, want one ErrNilAction failure", bf.Errors)
	}
	if bf.Errors[0].Category != action.CategoryRemove {
		t.Errorf("Errors[0].Category = %q, want remove", bf.Errors[0].Category)
	}
	if ran.Load() != 1 {
		t.Errorf("ran %d actions, want 1", ran.Load())
	}
	if n := len(log.calls()); n != 1 {
		t.Errorf("audit Create called %d times, want 1", n)
	}
}

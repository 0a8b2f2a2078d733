package settle_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/account-action-service/internal/app/settle"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := settle.Run(context.Background(), 5, []int{}, func(_ context.Context, _ int) (string, error) {
		t.Fatal("fn should not be called for empty items")
		return "", nil
	})

	if results == nil {
		t.Fatal("expected non-nil slice for empty items")
	}
	if len(results) != 0 {
		t.Fatalf("len(results) = %d, want 0", len(results))
	}
}

func TestRun_PartialFailureRunsEveryItem(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	items := []int{1, 2, 3, 4}
	var calls atomic.Int32

	results := settle.Run(context.Background(), 0, items, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n%2 == 0 {
			return 0, errBoom
		}
		return n * 10, nil
	})

	if got := calls.Load(); got != int32(len(items)) {
		t.Fatalf("fn called %d times, want %d", got, len(items))
	}

	if results[0].Failed() || results[0].Value != 10 {
		t.Errorf("results[0] = {%d, %v}, want {10, nil}", results[0].Value, results[0].Err)
	}
	if !errors.Is(results[1].Err, errBoom) {
		t.Errorf("results[1].Err = %v, want %v", results[1].Err, errBoom)
	}
	if results[2].Failed() || results[2].Value != 30 {
		t.Errorf("results[2] = {%d, %v}, want {30, nil}", results[2].Value, results[2].Err)
	}
	if !errors.Is(results[3].Err, errBoom) {
		t.Errorf("results[3].Err = %v, want %v", results[3].Err, errBoom)
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	// Items with varying delays to encourage out-of-order completion.
	items := []time.Duration{
		30 * time.Millisecond,
		10 * time.Millisecond,
		20 * time.Millisecond,
	}

	results := settle.Run(context.Background(), 0, items, func(_ context.Context, d time.Duration) (time.Duration, error) {
		time.Sleep(d)
		return d, nil
	})

	for i, r := range results {
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v", i, r.Err)
		}
		if r.Value != items[i] {
			t.Errorf("results[%d].Value = %v, want %v", i, r.Value, items[i])
		}
	}
}

func TestRun_FailureOrderFollowsInputNotCompletion(t *testing.T) {
	t.Parallel()

	// The first item fails last; it must still be reported first.
	items := []time.Duration{40 * time.Millisecond, 5 * time.Millisecond}

	results := settle.Run(context.Background(), 0, items, func(_ context.Context, d time.Duration) (int, error) {
		time.Sleep(d)
		return 0, errors.New(d.String())
	})

	errs := settle.Errors(results)
	if len(errs) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(errs))
	}
	if errs[0].Error() != "40ms" || errs[1].Error() != "5ms" {
		t.Errorf("Errors = [%v, %v], want [40ms, 5ms]", errs[0], errs[1])
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	const maxWorkers = 3
	const totalItems = 15

	var peak atomic.Int32
	var active atomic.Int32

	items := make([]int, totalItems)
	for i := range items {
		items[i] = i
	}

	results := settle.Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (int, error) {
		cur := active.Add(1)
		defer active.Add(-1)

		// Track peak concurrency with CAS loop.
		for {
			p := peak.Load()
			if cur <= p || peak.CompareAndSwap(p, cur) {
				break
			}
		}

		time.Sleep(10 * time.Millisecond)
		return 0, nil
	})

	if len(results) != totalItems {
		t.Fatalf("got %d results, want %d", len(results), totalItems)
	}
	if p := peak.Load(); p > maxWorkers {
		t.Fatalf("peak concurrency %d exceeded maxWorkers %d", p, maxWorkers)
	}
}

func TestRun_CanceledContextStillRunsEveryItem(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	results := settle.Run(ctx, 1, []int{1, 2, 3}, func(ctx context.Context, _ int) (int, error) {
		calls.Add(1)
		return 0, ctx.Err()
	})

	if got := calls.Load(); got != 3 {
		t.Fatalf("fn called %d times, want 3", got)
	}
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("results[%d].Err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestValues_SkipsFailures(t *testing.T) {
	t.Parallel()

	results := []settle.Result[string]{
		{Value: "a"},
		{Err: errors.New("x")},
		{Value: "c"},
	}

	vals := settle.Values(results)
	if len(vals) != 2 || vals[0] != "a" || vals[1] != "c" {
		t.Errorf("Values = %v, want [a c]", vals)
	}
}

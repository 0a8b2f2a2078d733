// Package settle provides the settle-all primitive used by application-layer
// orchestration. It runs a function across a slice of items, waits for every
// call to finish, and reports each item's outcome in input order. A failing
// item never stops or cancels its siblings.
package settle

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Failed reports whether the item settled with an error.
func (r Result[R]) Failed() bool {
	return r.Err != nil
}

// Run executes fn for each item in items and blocks until every call has
// returned. Results are returned in the same order as the input items, not
// in completion order.
//
// maxWorkers bounds how many calls run at once; a value <= 0 runs all items
// concurrently. Unlike a fail-fast group, Run never skips an item: the
// context is handed to fn untouched, and fn is responsible for honoring its
// cancellation or deadline.
//
// If items is empty, Run returns an empty non-nil slice immediately.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))

	var g errgroup.Group
	if maxWorkers > 0 {
		g.SetLimit(maxWorkers)
	}

	for i, item := range items {
		g.Go(func() error {
			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
			// Errors are recorded per item; returning nil keeps the group
			// from reporting a first error.
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// Errors returns the non-nil errors of results in input order.
func Errors[R any](results []Result[R]) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Values returns the values of the successful results in input order.
func Values[R any](results []Result[R]) []R {
	vals := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			vals = append(vals, r.Value)
		}
	}
	return vals
}

// Package health runs the readiness checks for the audit store and the
// partner APIs that account actions call.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

const defaultCheckTimeout = 2 * time.Second

type entry struct {
	checker  ports.HealthChecker
	critical bool
}

// Registry is the [ports.HealthRegistry] behind GET /health/ready. Checks
// run concurrently, each bounded by its own timeout, so one hung partner
// cannot stall the readiness answer.
type Registry struct {
	mu           sync.RWMutex
	entries      []entry
	checkTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Zero leaves checks bounded
// only by the caller's context.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.checkTimeout = d }
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: defaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a critical check. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.add(checker, true)
}

// RegisterOptional adds a check that degrades readiness without failing it.
func (r *Registry) RegisterOptional(checker ports.HealthChecker) {
	r.add(checker, false)
}

func (r *Registry) add(checker ports.HealthChecker, critical bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{checker: checker, critical: critical})
}

// CheckAll runs every check concurrently. When two checkers share a name
// the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]ports.HealthResult {
	r.mu.RLock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	errs := make([]error, len(entries))
	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			errs[i] = r.check(ctx, e.checker)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]ports.HealthResult, len(entries))
	for i, e := range entries {
		results[e.checker.Name()] = ports.HealthResult{Err: errs[i], Critical: e.critical}
	}
	return results
}

func (r *Registry) check(ctx context.Context, checker ports.HealthChecker) error {
	if r.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
	}
	return checker.HealthCheck(ctx)
}

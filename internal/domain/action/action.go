package action

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Operation is the asynchronous unit of work an Action wraps. It is supplied
// by the call site; retry and timeout policy belong to the operation itself.
type Operation[R any] func(ctx context.Context) (R, error)

// Runner is the type-erased view of an Action. It lets a single batch hold
// actions producing different result types.
type Runner interface {
	Name() string
	Category() Category
	Run(ctx context.Context) error
}

// ErrNilAction is the failure recorded when a nil *Action is executed.
var ErrNilAction = errors.New("nil action")

// nilActionName identifies a nil *Action in failures.
const nilActionName = "unnamed"

// Option configures an Action.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used to report a failed operation. Without it
// the action does not log.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Compile-time check that Action implements Runner.
var _ Runner = (*Action[struct{}])(nil)

// Action wraps one named external operation together with its category and
// captures the outcome once executed. The wrapped operation runs at most once;
// after that the outcome is fixed.
//
// Action is safe for concurrent use: concurrent Execute calls run the
// operation once and all observe the same outcome.
type Action[R any] struct {
	name     string
	category Category
	op       Operation[R]
	logger   *slog.Logger

	once     sync.Once
	executed atomic.Bool
	value    R
	err      *ActionError
}

// New creates an Action. A nil operation settles as a failure when executed.
func New[R any](name string, category Category, op Operation[R], opts ...Option) *Action[R] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Action[R]{
		name:     name,
		category: category,
		op:       op,
		logger:   logger,
	}
}

// Name returns the action's human-readable name.
func (a *Action[R]) Name() string {
	if a == nil {
		return nilActionName
	}
	return a.name
}

// Category returns the action's category.
func (a *Action[R]) Category() Category {
	if a == nil {
		return ""
	}
	return a.category
}

// Execute runs the wrapped operation and returns the action's name with the
// produced value. When the operation fails, the cause is stored, logged and
// returned as an *ActionError carrying the action's name and category.
//
// Execute never retries. Calling it again returns the stored outcome without
// invoking the operation.
//
// Executing a nil *Action fails with ErrNilAction instead of panicking.
func (a *Action[R]) Execute(ctx context.Context) (Named[R], error) {
	if a == nil {
		return Named[R]{Name: nilActionName}, NewActionError(nilActionName, "", ErrNilAction)
	}
	a.once.Do(func() {
		a.run(ctx)
	})

	if a.err != nil {
		return Named[R]{Name: a.name}, a.err
	}
	return Named[R]{Name: a.name, Value: a.value}, nil
}

// Run implements Runner by executing the action and discarding the value.
func (a *Action[R]) Run(ctx context.Context) error {
	_, err := a.Execute(ctx)
	return err
}

// Executed reports whether the wrapped operation has settled.
func (a *Action[R]) Executed() bool {
	return a != nil && a.executed.Load()
}

// Outcome returns the settled outcome, or nil if the action has not been
// executed yet.
func (a *Action[R]) Outcome() Outcome {
	if !a.Executed() {
		return nil
	}
	if a.err != nil {
		return Failure{Err: a.err}
	}
	return Success[R]{Value: a.value}
}

// run invokes the operation. A panic inside the operation settles the
// action as a failure.
func (a *Action[R]) run(ctx context.Context) {
	defer func() {
		if v := recover(); v != nil {
			a.fail(ctx, fmt.Errorf("panic: %v", v))
		}
		a.executed.Store(true)
	}()

	if a.op == nil {
		a.fail(ctx, fmt.Errorf("action %q has no operation", a.name))
		return
	}

	val, err := a.op(ctx)
	if err != nil {
		a.fail(ctx, err)
		return
	}
	a.value = val
}

func (a *Action[R]) fail(ctx context.Context, cause error) {
	a.err = NewActionError(a.name, a.category, cause)
	a.logger.ErrorContext(ctx, "account action failed",
		slog.String("operation", "Action.Execute"),
		slog.String("action", a.name),
		slog.String("category", a.category.String()),
		slog.Any("error", cause),
	)
}

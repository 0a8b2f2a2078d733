// Package batch runs a list of account actions with settle-all semantics and
// records the batch outcome as exactly one audit record.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/account-action-service/internal/app/settle"
	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/domain/action"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
	"github.com/jsamuelsen11/account-action-service/internal/platform/logging"
	"github.com/jsamuelsen11/account-action-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// ErrAuditWrite wraps a failure to persist the batch audit record.
var ErrAuditWrite = errors.New("writing batch audit record")

const defaultAuditTimeout = 5 * time.Second

// Option configures a Processor.
type Option func(*Processor)

// WithMaxWorkers caps how many actions of one batch run at the same time.
// Zero or negative runs them all at once.
func WithMaxWorkers(n int) Option {
	return func(p *Processor) {
		p.maxWorkers = n
	}
}

// WithTimeout sets the deadline carried by the context handed to actions.
// Actions are still all started; honoring the deadline is up to each
// operation. The audit write is not bound by it.
func WithTimeout(d time.Duration) Option {
	return func(p *Processor) {
		p.timeout = d
	}
}

// WithAuditTimeout bounds the audit write. The write is detached from the
// caller's cancellation so an abandoned request still leaves its record.
func WithAuditTimeout(d time.Duration) Option {
	return func(p *Processor) {
		p.auditTimeout = d
	}
}

// WithMetrics records batch and action counters. Nil disables metrics.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(p *Processor) {
		p.metrics = m
	}
}

// Processor executes batches of actions. It is safe for concurrent use; each
// Process call is independent.
type Processor struct {
	auditLog     ports.AuditLog
	auditTimeout time.Duration
	maxWorkers   int
	timeout      time.Duration
	metrics      *telemetry.Metrics
	tracer       trace.Tracer
}

// New creates a Processor writing to the given audit log.
func New(auditLog ports.AuditLog, opts ...Option) *Processor {
	p := &Processor{
		auditLog:     auditLog,
		auditTimeout: defaultAuditTimeout,
		tracer:       otel.GetTracerProvider().Tracer(telemetry.InstrumentationScope + "/batch"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs every action to completion, then writes one audit record for
// owner describing the batch.
//
// When all actions succeed the record is tagged with event's success type and
// returned wrapped in action.Success. When any action fails the record is
// tagged with the failure type, carries the BatchFailure message, and the
// *action.BatchFailure is returned. Failures are listed in input order,
// never completion order. An empty batch succeeds.
//
// If the audit write itself fails the returned error wraps ErrAuditWrite; on
// the failure path it is joined with the BatchFailure so both remain
// reachable through errors.As and errors.Is.
func (p *Processor) Process(
	ctx context.Context,
	category action.Category,
	actions []action.Runner,
	owner int64,
	event audit.Event,
) (action.Success[audit.Record], error) {
	if err := validate(category, event); err != nil {
		return action.Success[audit.Record]{}, err
	}
	event = event.WithCorrelation()

	ctx, span := p.tracer.Start(ctx, "batch.Process", trace.WithAttributes(
		attribute.String("action.category", category.String()),
		attribute.String("audit.event", event.Name),
		attribute.Int("batch.size", len(actions)),
		attribute.Int64("user.id", owner),
	))
	defer span.End()

	start := time.Now()
	failure := p.settle(ctx, category, actions)

	var (
		result action.Success[audit.Record]
		err    error
	)
	if failure != nil {
		err = p.recordFailure(ctx, owner, event, failure)
		span.SetStatus(codes.Error, failure.Message)
	} else {
		result, err = p.recordSuccess(ctx, owner, event)
	}
	if err != nil {
		span.RecordError(err)
	}

	p.recordBatch(ctx, category, event, start, failure == nil)

	return result, err
}

// settle runs every action and aggregates rejections in input order. It
// returns nil when every action succeeded.
func (p *Processor) settle(ctx context.Context, category action.Category, actions []action.Runner) *action.BatchFailure {
	runCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	results := settle.Run(runCtx, p.maxWorkers, actions, func(ctx context.Context, r action.Runner) (struct{}, error) {
		if r == nil {
			return struct{}{}, errors.New("nil action in batch")
		}
		return struct{}{}, r.Run(ctx)
	})

	var errs []*action.ActionError
	for i, res := range results {
		p.recordAction(ctx, category, !res.Failed())
		if !res.Failed() {
			continue
		}
		errs = append(errs, asActionError(actions[i], category, res.Err))
	}

	return action.NewBatchFailure(category, len(actions), errs)
}

func (p *Processor) recordSuccess(ctx context.Context, owner int64, event audit.Event) (action.Success[audit.Record], error) {
	record, err := p.writeAudit(ctx, audit.NewRecord(owner, event, true, ""))
	if err != nil {
		logging.FromContext(ctx).ErrorContext(ctx, "failed to write batch audit record",
			slog.String("operation", "batch.Process"),
			slog.Int64("user_id", owner),
			slog.String("event_type", event.SuccessType().String()),
			slog.Any("error", err),
		)
		return action.Success[audit.Record]{}, fmt.Errorf("%w: %w", ErrAuditWrite, err)
	}
	return action.Success[audit.Record]{Value: record}, nil
}

func (p *Processor) recordFailure(ctx context.Context, owner int64, event audit.Event, failure *action.BatchFailure) error {
	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "account action batch failed",
		slog.String("operation", "batch.Process"),
		slog.Int64("user_id", owner),
		slog.String("category", failure.Category.String()),
		slog.String("failed_actions", failure.FailedActions),
		slog.Int("failed", len(failure.Errors)),
		slog.Int("total", failure.Total),
	)

	if _, err := p.writeAudit(ctx, audit.NewRecord(owner, event, false, failure.Message)); err != nil {
		logger.ErrorContext(ctx, "failed to write batch audit record",
			slog.String("operation", "batch.Process"),
			slog.Int64("user_id", owner),
			slog.String("event_type", event.FailureType().String()),
			slog.Any("error", err),
		)
		return errors.Join(failure, fmt.Errorf("%w: %w", ErrAuditWrite, err))
	}
	return failure
}

// writeAudit persists the record even when ctx is already canceled: by now
// the external effects have happened and must be recorded.
func (p *Processor) writeAudit(ctx context.Context, record audit.Record) (audit.Record, error) {
	writeCtx := context.WithoutCancel(ctx)
	if p.auditTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(writeCtx, p.auditTimeout)
		defer cancel()
	}
	return p.auditLog.Create(writeCtx, record)
}

func (p *Processor) recordAction(ctx context.Context, category action.Category, ok bool) {
	if p.metrics == nil {
		return
	}
	p.metrics.ActionTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrCategory.String(category.String()),
		telemetry.AttrResult.String(resultLabel(ok)),
	))
}

func (p *Processor) recordBatch(ctx context.Context, category action.Category, event audit.Event, start time.Time, ok bool) {
	if p.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		telemetry.AttrCategory.String(category.String()),
		telemetry.AttrEvent.String(event.Name),
		telemetry.AttrResult.String(resultLabel(ok)),
	)
	p.metrics.BatchTotal.Add(ctx, 1, attrs)
	p.metrics.BatchDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

// asActionError returns the rejection as an *action.ActionError, wrapping it
// under the action's identity when the runner did not produce one.
func asActionError(r action.Runner, category action.Category, err error) *action.ActionError {
	var aerr *action.ActionError
	if errors.As(err, &aerr) {
		if aerr.Category == "" {
			return action.NewActionError(aerr.Name, category, aerr.Err)
		}
		return aerr
	}
	name := "unnamed"
	if r != nil {
		name = r.Name()
		category = r.Category()
	}
	return action.NewActionError(name, category, err)
}

func validate(category action.Category, event audit.Event) error {
	fields := map[string]string{}
	if !category.IsValid() {
		fields["category"] = fmt.Sprintf("unknown category %q", category)
	}
	if err := event.Validate(); err != nil {
		fields["event"] = "is required"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

package ports

import "context"

// HealthChecker is implemented by any component that can report its health:
// the audit database and the partner API clients.
type HealthChecker interface {
	// Name identifies the component in readiness output, e.g. "sqlite" or
	// "crm-api".
	Name() string

	// HealthCheck returns nil when the component is usable. Implementations
	// must honor ctx cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthResult is the outcome of one registered check.
type HealthResult struct {
	Err error

	// Critical checks gate readiness. A failing non-critical check only
	// degrades it.
	Critical bool
}

// HealthRegistry tracks the checks behind the readiness endpoint.
type HealthRegistry interface {
	// Register adds a check whose failure makes the service not ready.
	Register(checker HealthChecker)

	// RegisterOptional adds a check whose failure is reported but leaves
	// the service ready. Batches still run and record the failing actions.
	RegisterOptional(checker HealthChecker)

	// CheckAll runs every check and returns results keyed by checker name.
	CheckAll(ctx context.Context) map[string]HealthResult
}

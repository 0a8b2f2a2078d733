package domain

import "context"

// correlationIDKey is the context key for the correlation ID seen by the
// application layer.
type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the correlation ID of the
// request that started the work. Inbound adapters set it; the application
// layer stamps it onto audit events.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the correlation ID stored in ctx, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

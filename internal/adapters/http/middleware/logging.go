package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/account-action-service/internal/platform/logging"
)

// Logging returns middleware that stores a request-scoped logger carrying
// the request and correlation ids in the context, then logs one completion
// line per request with the matched route and, on account routes, the
// user_id. Server errors log at error level and client errors at warn.
// Request headers are logged, redacted, at debug level only.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					RedactHeaders(r.Header),
				)
			}

			rec := recordStatus(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			scope := scopeOf(r)
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("route", scope.route),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.written),
				slog.Duration("duration", time.Since(start)),
			}
			if scope.hasID {
				attrs = append(attrs, slog.Int64("user_id", scope.userID))
			}
			child.LogAttrs(ctx, completionLevel(rec.status), "request completed", attrs...)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

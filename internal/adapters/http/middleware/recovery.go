package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/http/dto"
)

// errInternalServer is the only thing a client learns about a panic.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into the same RFC
// 9457 problem document the account endpoints return for any other
// internal error. The log line carries the stack plus the request and
// correlation ids, the route and the user_id, so the panic can be matched
// to its audit record. Nothing is written when the response has already
// started. http.ErrAbortHandler is re-raised untouched so net/http can
// abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := recordStatus(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				scope := scopeOf(r)
				attrs := []slog.Attr{
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("route", scope.route),
					slog.String("request_id", rec.Header().Get(headerRequestID)),
					slog.String("correlation_id", rec.Header().Get(headerCorrelationID)),
				}
				if scope.hasID {
					attrs = append(attrs, slog.Int64("user_id", scope.userID))
				}
				logger.LogAttrs(r.Context(), slog.LevelError, "panic recovered", attrs...)

				if !rec.wrote {
					dto.WriteErrorResponse(rec, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

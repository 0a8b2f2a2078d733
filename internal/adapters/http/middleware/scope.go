// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The chain runs in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Logging and OpenTelemetry report the chi route pattern and the {userId}
// the request acted on, so every batch request can be traced back to its
// owner and to the audit record it produced.
package middleware

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// userIDParam is the path parameter naming the account owner on
// /api/v1/users/{userId}/... routes.
const userIDParam = "userId"

// unmatchedRoute labels requests that did not match any route, so 404 scans
// do not explode metric cardinality.
const unmatchedRoute = "unmatched"

// statusRecorder remembers the status and body size written through it.
// Nested middleware share one recorder per request.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	wrote   bool
	written int64
}

// recordStatus wraps w, reusing an existing recorder from an outer middleware.
func recordStatus(w http.ResponseWriter) *statusRecorder {
	if rec, ok := w.(*statusRecorder); ok {
		return rec
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wrote {
		return
	}
	rec.status = code
	rec.wrote = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	rec.wrote = true
	n, err := rec.ResponseWriter.Write(b)
	rec.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}

// requestScope is what routing revealed about a request.
type requestScope struct {
	route  string
	userID int64
	hasID  bool
}

// scopeOf reads the matched chi route and the owner id from r. It is only
// meaningful after the router has served r.
func scopeOf(r *http.Request) requestScope {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return requestScope{route: unmatchedRoute}
	}

	s := requestScope{route: rctx.RoutePattern()}
	if s.route == "" {
		s.route = unmatchedRoute
	}
	if raw := rctx.URLParam(userIDParam); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			s.userID, s.hasID = id, true
		}
	}
	return s
}

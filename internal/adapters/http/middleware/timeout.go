package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/account-action-service/internal/platform/logging"
)

// Timeout returns middleware that bounds how long a caller waits for a
// response. The handler's context carries the deadline, so outbound calls
// made by account actions are cut off with it. When the deadline passes
// first, the caller gets a 504 problem response. Actions already in flight
// settle as failures and the batch's audit record is still written, since
// the audit write does not inherit request cancellation.
//
// The handler runs on its own goroutine and writes into a buffer; exactly
// one of the handler or the timeout path reaches the real writer. Handler
// writes after the timeout return http.ErrHandlerTimeout. A panic in the
// handler is re-raised on the serving goroutine so Recovery still sees it.
// A zero timeout disables the middleware.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{w: w, header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicked <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicked:
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				// A handler that gave up on the deadline without answering
				// is treated the same as one still running.
				if tw.wroteHeader || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					tw.flush()
					return
				}
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
			}

			tw.timedOut = true
			logging.FromContext(ctx).WarnContext(ctx, "request timed out",
				slog.String("route", scopeOf(r).route),
				slog.Duration("timeout", timeout),
			)
			err := fmt.Errorf("no response within %s, any account actions already started are still recorded in the audit log: %w",
				timeout, context.DeadlineExceeded)
			dto.WriteErrorResponse(w, r, err)
		})
	}
}

// timeoutWriter buffers the handler's response until the handler returns.
// The mutex is shared by the handler goroutine and the timeout select.
type timeoutWriter struct {
	w           http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flush copies the buffered response to the real writer. Callers hold tw.mu.
func (tw *timeoutWriter) flush() {
	maps.Copy(tw.w.Header(), tw.header)
	if tw.wroteHeader {
		tw.w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = tw.w.Write(tw.buf)
	}
}

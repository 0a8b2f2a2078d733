package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
)

const linkedAccountsRoute = "/api/v1/users/{userId}/linked-accounts"

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// accountRouter mounts h on the linked-accounts route behind mws, the way
// the production router applies middleware.
func accountRouter(h http.HandlerFunc, mws ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(mws...)
	r.Handle(linkedAccountsRoute, h)
	return r
}

// logEntries decodes one JSON object per log line.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var e map[string]any
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			t.Fatalf("decoding log line %q: %v", sc.Text(), err)
		}
		entries = append(entries, e)
	}
	return entries
}

// findEntry returns the first log entry with the given message.
func findEntry(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()

	for _, e := range logEntries(t, buf) {
		if e["msg"] == msg {
			return e
		}
	}
	t.Fatalf("no %q log line in:\n%s", msg, buf.String())
	return nil
}

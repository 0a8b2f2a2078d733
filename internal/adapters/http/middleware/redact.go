package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/account-action-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// isSensitiveHeader covers logging.SensitiveHeaders plus any header whose
// name mentions a token or secret, such as forwarded partner credentials.
func isSensitiveHeader(name string) bool {
	name = strings.ToLower(name)
	return logging.SensitiveHeaders[name] || strings.Contains(name, "token") || strings.Contains(name, "secret")
}

// RedactHeaders renders headers as a "headers" log group in stable name
// order, with credentials replaced by "[REDACTED]" and multi-value headers
// joined with a comma.
func RedactHeaders(headers http.Header) slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]any, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if isSensitiveHeader(name) {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}

package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/home-service/internal/platform/logging"
)

// RedactHeaders renders headers as log attributes, masking credentials.
// Multi-value headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.IsSensitiveHeader(key) {
			attrs = append(attrs, slog.String(key, logging.Redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}

// RedactQuery renders query parameters for logging with secret values
// masked. Filter and sort values are kept since they are what reproduces a
// query. The result is in url.Values.Encode order.
func RedactQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	safe := make(url.Values, len(q))
	for key, vals := range q {
		if logging.IsSensitiveField(key) {
			safe[key] = []string{logging.Redacted}
			continue
		}
		safe[key] = vals
	}
	return safe.Encode()
}

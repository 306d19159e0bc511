package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/replicator/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders converts headers into slog attributes for debug logging.
// Names in logging.SensitiveHeaders are replaced with "[REDACTED]"; multi-value
// headers are joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
	}
	return attrs
}

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/replicator/internal/platform/logging"
)

// Logging logs request start and completion. It derives a child logger
// carrying the request and correlation IDs, stores it via logging.WithLogger
// so the provisioning run logs under the same IDs, and logs completion with
// the matched route, status code and duration.
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

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rw, r)

			child.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routeLabel(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

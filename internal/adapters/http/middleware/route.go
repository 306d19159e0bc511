package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// routeLabel returns the matched chi route pattern (e.g. "/api/v1/provision")
// so span names and log lines stay low-cardinality. Outside a chi router, or
// before routing has matched, it falls back to the raw path.
func routeLabel(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/replicator/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	pageHandler *handlers.PageHandler,
	provisionHandler *handlers.ProvisionHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Control page.
	r.Get("/", pageHandler.Index)

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/provision", provisionHandler.Provision)
		r.Post("/provision/batch", provisionHandler.ProvisionBatch)
		r.Get("/project", provisionHandler.Project)
	})

	return r
}

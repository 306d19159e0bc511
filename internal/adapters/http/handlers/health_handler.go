package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/replicator/internal/domain/provision"
	"github.com/jsamuelsen11/replicator/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	level    provision.Level
}

// NewHealthHandler creates a HealthHandler. level is the recursion level of
// this instance and is reported by Liveness so that an operator can tell the
// instances of a chain apart.
func NewHealthHandler(registry ports.HealthRegistry, level provision.Level) *HealthHandler {
	return &HealthHandler{registry: registry, level: level}
}

type livenessResponse struct {
	Status string `json:"status"`
	Level  int    `json:"level"`
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, livenessResponse{Status: statusOK, Level: int(h.level)})
}

// Readiness handles GET /health/ready. Returns 200 if every check passes,
// 503 otherwise. The provisioning backend check fails while its circuit
// breaker is open or half-open.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = statusOK
	}

	resp := readinessResponse{Status: statusReady, Checks: checks}
	code := http.StatusOK
	if !healthy {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, resp)
}

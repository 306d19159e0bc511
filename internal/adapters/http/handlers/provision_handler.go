package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/replicator/internal/adapters/http/dto"
	"github.com/jsamuelsen11/replicator/internal/platform/logging"
	"github.com/jsamuelsen11/replicator/internal/ports"
)

// ProvisionHandler exposes the provisioning workflow over HTTP.
type ProvisionHandler struct {
	svc      ports.ProvisioningService
	maxBatch int
}

// NewProvisionHandler creates a ProvisionHandler. maxBatch bounds the count
// accepted by ProvisionBatch.
func NewProvisionHandler(svc ports.ProvisioningService, maxBatch int) *ProvisionHandler {
	return &ProvisionHandler{svc: svc, maxBatch: maxBatch}
}

// Provision handles POST /api/v1/provision. It runs the workflow once and
// returns 201 with the exposed domain, or the workflow error as problem+json
// with its message unchanged.
func (h *ProvisionHandler) Provision(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Provision(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProvisionResponse(result))
}

// ProvisionBatch handles POST /api/v1/provision/batch. Runs succeed or fail
// independently; the response is 200 with per-run outcomes unless the
// request itself is invalid.
func (h *ProvisionHandler) ProvisionBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}
	if err := req.Validate(h.maxBatch); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.svc.ProvisionBatch(r.Context(), req.Count)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	resp := dto.ToBatchResponse(result)
	if resp.Failed > 0 {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "batch completed with failures",
			slog.Int("total", resp.Total),
			slog.Int("failed", resp.Failed),
		)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Project handles GET /api/v1/project.
func (h *ProvisionHandler) Project(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Project(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectResponse(p))
}

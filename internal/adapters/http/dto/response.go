// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/replicator/internal/domain/provision"
	"github.com/jsamuelsen11/replicator/internal/ports"
)

// ProvisionResponse represents one provisioned service in HTTP responses.
type ProvisionResponse struct {
	Domain      string `json:"domain"`
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name"`
	Level       int    `json:"level"`
}

// ToProvisionResponse converts a provisioning result to an HTTP response DTO.
func ToProvisionResponse(r *provision.Result) ProvisionResponse {
	return ProvisionResponse{
		Domain:      string(r.Domain),
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		Level:       int(r.Level),
	}
}

// BatchResponse represents the result of a batch run. It includes both
// successful runs and per-run errors.
type BatchResponse struct {
	Provisioned []ProvisionResponse `json:"provisioned"`
	Errors      []BatchErrorItem    `json:"errors"`
	Total       int                 `json:"total"`
	Succeeded   int                 `json:"succeeded"`
	Failed      int                 `json:"failed"`
}

// BatchErrorItem represents a single failed run within a batch. Kind is
// "backend", "transport" or "error".
type BatchErrorItem struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ToBatchResponse converts a ports.BatchResult to an HTTP response DTO.
func ToBatchResponse(result *ports.BatchResult) BatchResponse {
	provisioned := make([]ProvisionResponse, len(result.Provisioned))
	for i := range result.Provisioned {
		provisioned[i] = ToProvisionResponse(&result.Provisioned[i])
	}

	errs := make([]BatchErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BatchErrorItem{
			Index:   e.Index,
			Kind:    errorKind(e.Err),
			Message: e.Err.Error(),
		}
	}

	total := len(result.Provisioned) + len(result.Errors)
	return BatchResponse{
		Provisioned: provisioned,
		Errors:      errs,
		Total:       total,
		Succeeded:   len(result.Provisioned),
		Failed:      len(result.Errors),
	}
}

// ProjectResponse represents the configured project in HTTP responses.
type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToProjectResponse converts a domain Project to an HTTP response DTO.
func ToProjectResponse(p *provision.Project) ProjectResponse {
	return ProjectResponse{ID: p.ID, Name: p.Name}
}

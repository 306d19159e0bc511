package dto

import (
	"fmt"

	"github.com/jsamuelsen11/replicator/internal/domain"
)

// BatchRequest represents the JSON body for a batch provisioning run.
type BatchRequest struct {
	Count int `json:"count"`
}

// Validate checks Count against maxBatch. The application layer enforces
// the same bound; checking here rejects the request before any work starts.
// Returns a *domain.ValidationError if the check fails.
func (r *BatchRequest) Validate(maxBatch int) error {
	if r.Count < 1 || r.Count > maxBatch {
		return &domain.ValidationError{Fields: map[string]string{
			"count": fmt.Sprintf("must be between 1 and %d, got %d", maxBatch, r.Count),
		}}
	}
	return nil
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/replicator/internal/domain/provision"
)

// ProvisioningService defines the service port for the provisioning workflow.
// Implemented by the application layer; called by inbound adapters (handlers).
type ProvisioningService interface {
	// Provision runs the workflow once: create a service one level deeper,
	// attach its source, expose a domain. Returns the first failure as-is.
	Provision(ctx context.Context) (*provision.Result, error)

	// ProvisionBatch runs count independent workflows with bounded
	// concurrency. Uses partial success semantics: each run succeeds or fails
	// independently. Returns a hard error only for request-level failures
	// (count out of range).
	ProvisionBatch(ctx context.Context, count int) (*BatchResult, error)

	// Project returns the configured project, verifying that the credential
	// can reach the backend.
	Project(ctx context.Context) (*provision.Project, error)
}

// BatchError records a single failed run within a batch.
type BatchError struct {
	Index int
	Err   error
}

// BatchResult holds the outcomes of a batch. Provisioned contains successful
// runs in input order; Errors contains per-run failures.
type BatchResult struct {
	Provisioned []provision.Result
	Errors      []BatchError
}

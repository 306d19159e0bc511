package ports

import (
	"context"

	"github.com/jsamuelsen11/replicator/internal/domain/provision"
)

// ProvisioningClient defines the client port for the provisioning backend.
// Implemented by the ACL adapter; called by the application layer.
//
// Every method performs exactly one remote exchange. Failures are returned
// as *domain.WorkflowError: KindTransport when the exchange itself failed,
// KindBackend when the backend reported errors (even alongside data).
type ProvisioningClient interface {
	// CreateService creates a service and returns it with its backend ID.
	CreateService(ctx context.Context, payload provision.CreatePayload) (*provision.Service, error)

	// ConnectSource attaches a repository and branch to an existing service.
	ConnectSource(ctx context.Context, payload provision.AttachPayload) error

	// CreateDomain exposes a service and returns its public hostname.
	CreateDomain(ctx context.Context, payload provision.DomainPayload) (provision.Domain, error)

	// DeleteService removes a service. Used only for compensation.
	DeleteService(ctx context.Context, serviceID string) error

	// GetProject returns the named project. Read-only.
	GetProject(ctx context.Context, projectID string) (*provision.Project, error)
}

package acl

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/replicator/internal/adapters/clients/acl/railway"
	"github.com/jsamuelsen11/replicator/internal/domain"
	"github.com/jsamuelsen11/replicator/internal/domain/provision"
	"github.com/jsamuelsen11/replicator/internal/platform/httpclient"
	"github.com/jsamuelsen11/replicator/internal/ports"
)

var _ ports.ProvisioningClient = (*RailwayClient)(nil)

var (
	opServiceCreate = Operation{Name: railway.OpServiceCreate, Query: railway.ServiceCreateMutation}

	opServiceConnect = Operation{Name: railway.OpServiceConnect, Query: railway.ServiceConnectMutation}

	opServiceDomainCreate = Operation{Name: railway.OpServiceDomainCreate, Query: railway.ServiceDomainCreateMutation}

	opServiceDelete = Operation{Name: railway.OpServiceDelete, Query: railway.ServiceDeleteMutation}

	opProject = Operation{Name: railway.OpProject, Query: railway.ProjectQuery, ReadOnly: true}
)

// RailwayClient is the outbound adapter for the Railway GraphQL API. It
// implements [ports.ProvisioningClient].
//
// Each method is one GraphQL exchange. Payloads are translated by the
// [railway] subpackage; failures come back as *domain.WorkflowError from
// [Requester]. The underlying [httpclient.Client] carries the bearer
// credential and provides circuit breaking, tracing and metrics.
type RailwayClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewRailwayClient creates a RailwayClient that sends requests through the
// given [httpclient.Client], whose BaseURL is the GraphQL endpoint.
func NewRailwayClient(client *httpclient.Client, logger *slog.Logger) *RailwayClient {
	return &RailwayClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// CreateService runs serviceCreate and returns the created service.
func (c *RailwayClient) CreateService(ctx context.Context, payload provision.CreatePayload) (*provision.Service, error) {
	var data railway.ServiceCreateData
	if err := c.req.Do(ctx, opServiceCreate, railway.ToServiceCreateVariables(payload), &data); err != nil {
		return nil, err
	}
	if data.ServiceCreate == nil || data.ServiceCreate.ID == "" {
		return nil, domain.NewTransportError(opServiceCreate.Name, errors.New("response carried no service id"))
	}

	svc := railway.ToDomainService(data.ServiceCreate)
	return &svc, nil
}

// ConnectSource runs serviceConnect. The response payload is not used.
func (c *RailwayClient) ConnectSource(ctx context.Context, payload provision.AttachPayload) error {
	return c.req.Do(ctx, opServiceConnect, railway.ToServiceConnectVariables(payload), nil)
}

// CreateDomain runs serviceDomainCreate and returns the assigned hostname.
func (c *RailwayClient) CreateDomain(ctx context.Context, payload provision.DomainPayload) (provision.Domain, error) {
	var data railway.ServiceDomainCreateData
	if err := c.req.Do(ctx, opServiceDomainCreate, railway.ToServiceDomainCreateVariables(payload), &data); err != nil {
		return "", err
	}
	if data.ServiceDomainCreate == nil || data.ServiceDomainCreate.Domain == "" {
		return "", domain.NewTransportError(opServiceDomainCreate.Name, errors.New("response carried no domain"))
	}

	return provision.Domain(data.ServiceDomainCreate.Domain), nil
}

// DeleteService runs serviceDelete.
func (c *RailwayClient) DeleteService(ctx context.Context, serviceID string) error {
	return c.req.Do(ctx, opServiceDelete, railway.IDVariables{ID: serviceID}, nil)
}

// GetProject runs the project query.
func (c *RailwayClient) GetProject(ctx context.Context, projectID string) (*provision.Project, error) {
	var data railway.ProjectData
	if err := c.req.Do(ctx, opProject, railway.IDVariables{ID: projectID}, &data); err != nil {
		return nil, err
	}
	if data.Project == nil {
		return nil, domain.NewTransportError(opProject.Name, errors.New("response carried no project"))
	}

	p := railway.ToDomainProject(data.Project)
	return &p, nil
}

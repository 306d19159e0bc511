package app

import (
	"context"
	"errors"
	"fmt"

	appctx "github.com/jsamuelsen11/replicator/internal/app/context"
	"github.com/jsamuelsen11/replicator/internal/domain"
	"github.com/jsamuelsen11/replicator/internal/domain/provision"
	"github.com/jsamuelsen11/replicator/internal/ports"
)

// Step names, matching the backend operations they perform.
const (
	stepCreate = "serviceCreate"
	stepAttach = "serviceConnect"
	stepExpose = "serviceDomainCreate"
)

var _ domain.Action = (*createServiceStep)(nil)

// errNoService is returned by a step that runs before the service exists.
// Commit's fail-fast ordering makes it unreachable in practice.
var errNoService = errors.New("no service created in this run")

// createServiceStep creates the service and publishes it to the run.
// Its Rollback deletes the service again.
type createServiceStep struct {
	client  ports.ProvisioningClient
	payload provision.CreatePayload
	created *appctx.SafeRef[provision.Service]
}

func (s *createServiceStep) Execute(ctx context.Context) error {
	svc, err := s.client.CreateService(ctx, s.payload)
	if err != nil {
		return err
	}
	s.created.Set(*svc)
	return nil
}

func (s *createServiceStep) Rollback(ctx context.Context) error {
	svc, ok := s.created.Get()
	if !ok {
		return nil
	}
	return s.client.DeleteService(ctx, svc.ID)
}

func (s *createServiceStep) Name() string { return stepCreate }

func (s *createServiceStep) Description() string {
	return "create service " + s.payload.Name
}

// attachSourceStep connects the repository to the created service.
type attachSourceStep struct {
	client  ports.ProvisioningClient
	source  provision.SourceBinding
	created *appctx.SafeRef[provision.Service]
}

func (s *attachSourceStep) Execute(ctx context.Context) error {
	svc, ok := s.created.Get()
	if !ok {
		return errNoService
	}
	return s.client.ConnectSource(ctx, provision.BuildSourceAttachPayload(svc.ID, s.source))
}

func (s *attachSourceStep) Rollback(context.Context) error { return nil }

func (s *attachSourceStep) Name() string { return stepAttach }

func (s *attachSourceStep) Description() string {
	return fmt.Sprintf("attach %s@%s", s.source.Repo(), s.source.Branch)
}

// exposeDomainStep assigns a public domain to the created service.
type exposeDomainStep struct {
	client        ports.ProvisioningClient
	environmentID string
	created       *appctx.SafeRef[provision.Service]
	exposed       *appctx.SafeRef[provision.Domain]
}

func (s *exposeDomainStep) Execute(ctx context.Context) error {
	svc, ok := s.created.Get()
	if !ok {
		return errNoService
	}
	d, err := s.client.CreateDomain(ctx, provision.BuildDomainPayload(svc.ID, s.environmentID))
	if err != nil {
		return err
	}
	s.exposed.Set(d)
	return nil
}

func (s *exposeDomainStep) Rollback(context.Context) error { return nil }

func (s *exposeDomainStep) Name() string { return stepExpose }

func (s *exposeDomainStep) Description() string { return "expose domain" }

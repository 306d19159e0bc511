package railway

import (
	"maps"

	"github.com/jsamuelsen11/replicator/internal/domain/provision"
)

// ToServiceCreateVariables converts a creation payload to the serviceCreate
// variables. Empty Source and Branch become nulls; the variables map is
// always sent, even when empty.
func ToServiceCreateVariables(p provision.CreatePayload) InputVariables[ServiceCreateInput] {
	in := ServiceCreateInput{
		ProjectID:     p.ProjectID,
		EnvironmentID: p.EnvironmentID,
		Name:          p.Name,
		Variables:     make(map[string]string, len(p.Variables)),
	}
	maps.Copy(in.Variables, p.Variables)

	if p.Branch != "" {
		branch := p.Branch
		in.Branch = &branch
	}
	if p.Source != "" {
		in.Source = &ServiceSourceInput{Repo: p.Source}
	}

	return InputVariables[ServiceCreateInput]{Input: in}
}

// ToServiceConnectVariables converts an attachment payload to the
// serviceConnect variables.
func ToServiceConnectVariables(p provision.AttachPayload) ServiceConnectVariables {
	return ServiceConnectVariables{
		ID:    p.ServiceID,
		Input: ServiceConnectInput{Repo: p.Repo, Branch: p.Branch},
	}
}

// ToServiceDomainCreateVariables converts a domain payload to the
// serviceDomainCreate variables.
func ToServiceDomainCreateVariables(p provision.DomainPayload) InputVariables[ServiceDomainCreateInput] {
	return InputVariables[ServiceDomainCreateInput]{
		Input: ServiceDomainCreateInput{ServiceID: p.ServiceID, EnvironmentID: p.EnvironmentID},
	}
}

// ToDomainService converts a ServiceDTO to a domain Service.
func ToDomainService(dto *ServiceDTO) provision.Service {
	return provision.Service{ID: dto.ID, Name: dto.Name}
}

// ToDomainProject converts a ProjectDTO to a domain Project.
func ToDomainProject(dto *ProjectDTO) provision.Project {
	return provision.Project{ID: dto.ID, Name: dto.Name}
}

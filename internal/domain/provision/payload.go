package provision

import "maps"

// CreatePayload is the input of the service creation call. Source and Branch
// are intentionally empty: the repository is attached in a separate step.
type CreatePayload struct {
	ProjectID     string
	EnvironmentID string
	Name          string
	Source        string
	Branch        string
	Variables     map[string]string
}

// AttachPayload is the input of the source attachment call.
type AttachPayload struct {
	ServiceID string
	Repo      string
	Branch    string
}

// DomainPayload is the input of the domain exposure call.
type DomainPayload struct {
	ServiceID     string
	EnvironmentID string
}

// ChildVariables returns the variables a child service needs to continue the
// chain: its own level and the bearer credential.
func ChildVariables(level Level, token string) map[string]string {
	return map[string]string{
		VariableLevel: level.String(),
		VariableToken: token,
	}
}

// BuildCreatePayload assembles the service creation input. The variables map
// is copied so the payload does not alias the caller's map.
func BuildCreatePayload(id Identity, projectID, environmentID string, variables map[string]string) CreatePayload {
	vars := make(map[string]string, len(variables))
	maps.Copy(vars, variables)
	return CreatePayload{
		ProjectID:     projectID,
		EnvironmentID: environmentID,
		Name:          id.Name,
		Variables:     vars,
	}
}

// BuildSourceAttachPayload assembles the source attachment input.
func BuildSourceAttachPayload(serviceID string, source SourceBinding) AttachPayload {
	return AttachPayload{
		ServiceID: serviceID,
		Repo:      source.Repo(),
		Branch:    source.Branch,
	}
}

// BuildDomainPayload assembles the domain exposure input.
func BuildDomainPayload(serviceID, environmentID string) DomainPayload {
	return DomainPayload{
		ServiceID:     serviceID,
		EnvironmentID: environmentID,
	}
}

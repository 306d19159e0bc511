package provision

import "fmt"

// Names of the variables injected into every provisioned child. The child's
// configuration reads them back at startup.
const (
	VariableLevel = "LEVEL"
	VariableToken = "RAILWAY_TOKEN"
)

// SourceBinding identifies the repository and branch a service deploys from.
// Empty fields are propagated as-is.
type SourceBinding struct {
	Owner  string
	Name   string
	Branch string
}

// Repo returns the "owner/name" repository reference.
func (s SourceBinding) Repo() string {
	return fmt.Sprintf("%s/%s", s.Owner, s.Name)
}

// Service is a service as reported by the backend. ID is assigned by the
// backend and only referenced, never changed, by this side.
type Service struct {
	ID   string
	Name string
}

// Domain is the externally reachable hostname assigned to a service.
type Domain string

// Result is the outcome of a successful provisioning run.
type Result struct {
	ServiceID   string
	ServiceName string
	Level       Level
	Domain      Domain
}

// Project is the subset of a backend project used to verify access.
type Project struct {
	ID   string
	Name string
}

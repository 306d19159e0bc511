// Package railway implements the Anti-Corruption Layer translators for the
// Railway GraphQL API: operation documents, input and payload DTOs, and the
// mapping to and from provisioning domain types.
package railway

// ServiceSourceInput matches the ServiceSourceInput schema.
type ServiceSourceInput struct {
	Repo  string `json:"repo,omitempty"`
	Image string `json:"image,omitempty"`
}

// ServiceCreateInput matches the ServiceCreateInput schema. Branch and Source
// are sent as explicit nulls when unset.
type ServiceCreateInput struct {
	ProjectID     string              `json:"projectId"`
	EnvironmentID string              `json:"environmentId"`
	Name          string              `json:"name"`
	Branch        *string             `json:"branch"`
	Source        *ServiceSourceInput `json:"source"`
	Variables     map[string]string   `json:"variables"`
}

// ServiceConnectInput matches the ServiceConnectInput schema.
type ServiceConnectInput struct {
	Repo   string `json:"repo"`
	Branch string `json:"branch"`
}

// ServiceDomainCreateInput matches the ServiceDomainCreateInput schema.
type ServiceDomainCreateInput struct {
	ServiceID     string `json:"serviceId"`
	EnvironmentID string `json:"environmentId"`
}

// InputVariables wraps a single "input" argument.
type InputVariables[T any] struct {
	Input T `json:"input"`
}

// ServiceConnectVariables are the variables of the serviceConnect mutation.
type ServiceConnectVariables struct {
	ID    string              `json:"id"`
	Input ServiceConnectInput `json:"input"`
}

// IDVariables carries a single "id" argument.
type IDVariables struct {
	ID string `json:"id"`
}

// ServiceDTO matches the Service fields selected by the documents.
type ServiceDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceDomainDTO matches the ServiceDomain fields selected by the documents.
type ServiceDomainDTO struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
}

// ProjectDTO matches the Project fields selected by the documents.
type ProjectDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ServiceCreateData is the data payload of serviceCreate.
type ServiceCreateData struct {
	ServiceCreate *ServiceDTO `json:"serviceCreate"`
}

// ServiceConnectData is the data payload of serviceConnect.
type ServiceConnectData struct {
	ServiceConnect *ServiceDTO `json:"serviceConnect"`
}

// ServiceDomainCreateData is the data payload of serviceDomainCreate.
type ServiceDomainCreateData struct {
	ServiceDomainCreate *ServiceDomainDTO `json:"serviceDomainCreate"`
}

// ServiceDeleteData is the data payload of serviceDelete.
type ServiceDeleteData struct {
	ServiceDelete bool `json:"serviceDelete"`
}

// ProjectData is the data payload of the project query.
type ProjectData struct {
	Project *ProjectDTO `json:"project"`
}

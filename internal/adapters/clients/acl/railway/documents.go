package railway

// Operation names as sent in the request body and used in logs and errors.
const (
	OpServiceCreate       = "serviceCreate"
	OpServiceConnect      = "serviceConnect"
	OpServiceDomainCreate = "serviceDomainCreate"
	OpServiceDelete       = "serviceDelete"
	OpProject             = "project"
)

const ServiceCreateMutation = `mutation serviceCreate($input: ServiceCreateInput!) {
  serviceCreate(input: $input) {
    id
    name
  }
}`

const ServiceConnectMutation = `mutation serviceConnect($id: String!, $input: ServiceConnectInput!) {
  serviceConnect(id: $id, input: $input) {
    id
  }
}`

const ServiceDomainCreateMutation = `mutation serviceDomainCreate($input: ServiceDomainCreateInput!) {
  serviceDomainCreate(input: $input) {
    id
    domain
  }
}`

const ServiceDeleteMutation = `mutation serviceDelete($id: String!) {
  serviceDelete(id: $id)
}`

const ProjectQuery = `query project($id: String!) {
  project(id: $id) {
    id
    name
  }
}`

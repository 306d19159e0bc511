// Package domain contains shared domain types used across entity sub-packages.
// Provisioning types live in domain/provision. This root package holds
// sentinel errors, the WorkflowError taxonomy, validation types, and the
// Action interface used by the step queue.
package domain

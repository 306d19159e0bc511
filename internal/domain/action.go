package domain

import "context"

// Action is one step of a workflow with an optional compensating Rollback.
//
// Action is defined in the domain layer so that domain services can reference
// it without depending on the application layer (dependency inversion).
type Action interface {
	// Execute performs the step. The context carries cancellation and
	// deadline signals that the implementation should respect.
	Execute(ctx context.Context) error

	// Rollback reverses the effect of a previously successful Execute call.
	// Rollback is only called if Execute returned nil. The context may
	// differ from the one passed to Execute.
	Rollback(ctx context.Context) error

	// Name returns a short stable identifier for the step (e.g.
	// "serviceCreate"), suitable as a metric label.
	Name() string

	// Description returns a human-readable description of the action for
	// logging purposes (e.g., "create service abc_level_1").
	Description() string
}

// Package appctx provides the per-run step queue used by orchestration
// services.
//
// A RunContext is created for each workflow run and must not be shared
// between runs:
//
//	rc := appctx.New(ctx, appctx.WithRollback(compensate))
//
//	// Stage the steps in order
//	rc.AddAction(createStep)
//	rc.AddAction(attachStep)
//
//	// Execute them; the first failure stops the run
//	err := rc.Commit(ctx)
//
// Steps that need to pass values forward share a SafeRef.
package appctx

import (
	"context"
	"errors"
	"sync"

	"github.com/jsamuelsen11/replicator/internal/domain"
)

// ErrAlreadyCommitted is returned when AddAction or Commit is called on a
// RunContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: run context already committed")

// ErrNilAction is returned when a nil Action is passed to AddAction.
var ErrNilAction = errors.New("appctx: nil action")

// StepObserver is notified after every executed step with its outcome.
type StepObserver func(ctx context.Context, action domain.Action, err error)

// Option configures a RunContext.
type Option func(*RunContext)

// WithRollback enables rolling back completed steps, in reverse order, when
// a later step fails. Disabled by default: completed steps are left as-is.
func WithRollback(enabled bool) Option {
	return func(rc *RunContext) { rc.rollback = enabled }
}

// WithObserver registers fn to be called after each executed step.
func WithObserver(fn StepObserver) Option {
	return func(rc *RunContext) { rc.observer = fn }
}

// RunContext is a run-scoped context wrapper holding the ordered steps of a
// single workflow run. It embeds context.Context.
type RunContext struct {
	context.Context

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool

	rollback bool
	observer StepObserver
}

// New creates a RunContext wrapping ctx with no staged steps.
func New(ctx context.Context, opts ...Option) *RunContext {
	rc := &RunContext{Context: ctx}
	for _, opt := range opts {
		opt(rc)
	}
	return rc
}

// AddAction stages action for execution by Commit. Returns ErrNilAction if
// action is nil, or ErrAlreadyCommitted after Commit.
//
// AddAction is safe for concurrent use.
func (rc *RunContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Len returns the number of staged steps.
func (rc *RunContext) Len() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.items)
}

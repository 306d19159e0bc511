// Package health provides the readiness registry. Checkers are registered at
// startup and run concurrently on each readiness probe.
package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/replicator/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Option customizes a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual health check. Zero means the
// caller's context is the only bound.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

type entry struct {
	name    string
	checker ports.HealthChecker
}

// Registry is a thread-safe [ports.HealthRegistry]. Checkers are keyed by
// name; registering a second checker under an existing name replaces the
// first.
type Registry struct {
	mu      sync.RWMutex
	entries []entry
	timeout time.Duration
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker, replacing any checker already registered under the
// same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i].checker = checker
			return
		}
	}
	r.entries = append(r.entries, entry{name: name, checker: checker})
}

// CheckAll runs every registered check concurrently and returns the results
// keyed by checker name. A nil value means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	results := make([]error, len(entries))

	var g errgroup.Group
	for i, e := range entries {
		g.Go(func() error {
			checkCtx := ctx
			if r.timeout > 0 {
				var cancel context.CancelFunc
				checkCtx, cancel = context.WithTimeout(ctx, r.timeout)
				defer cancel()
			}
			results[i] = e.checker.HealthCheck(checkCtx)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]error, len(entries))
	for i, e := range entries {
		out[e.name] = results[i]
	}
	return out
}

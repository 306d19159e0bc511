package appctx

import "sync"

// SafeRef carries a value between the steps of a run. A step that produces
// a value (a created service, say) calls Set; later steps call Get.
//
// Reads take a shared lock and writes an exclusive one, so a SafeRef can
// also be read from goroutines that observe the run.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
	set bool
}

// NewRef creates an unset SafeRef holding the zero value.
func NewRef[T any]() *SafeRef[T] {
	return &SafeRef[T]{}
}

// Get returns a copy of the current value and whether it has been set.
func (r *SafeRef[T]) Get() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val, r.set
}

// Set replaces the current value.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
	r.set = true
}

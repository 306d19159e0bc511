// Package fanout runs a function a fixed number of times with bounded
// concurrency, collecting every outcome in index order. One failure never
// stops the other runs.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of one run. Either Value is populated or Err is
// non-nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each index in [0, n) with at most maxWorkers calls in
// flight and returns the results in index order.
//
// Runs that have not started when ctx is canceled record ctx.Err() without
// calling fn. Runs already in flight complete; fn is responsible for
// honoring ctx.
//
// Run blocks until every run finishes. A maxWorkers below 1 is treated as 1.
func Run[R any](ctx context.Context, maxWorkers, n int, fn func(ctx context.Context, index int) (R, error)) []Result[R] {
	if n <= 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], n)

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			val, err := fn(ctx, i)
			results[i] = Result[R]{Value: val, Err: err}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

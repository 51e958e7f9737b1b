// Package fanout runs indexed work concurrently and joins the results in index order.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Collect calls fn for every index in [0, n) concurrently. Each result lands in
// the slot of its index, so the output order never depends on completion order.
// The first error cancels the shared context and is returned; partial results
// are discarded.
func Collect[T any](ctx context.Context, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	if n == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			v, err := fn(gctx, i)
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Map is Collect over a slice of inputs.
func Map[In, Out any](ctx context.Context, in []In, fn func(ctx context.Context, v In) (Out, error)) ([]Out, error) {
	return Collect(ctx, len(in), func(ctx context.Context, i int) (Out, error) {
		return fn(ctx, in[i])
	})
}

// Package fanout runs one task per input concurrently and joins the results.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map calls fn for every element of in, all at once, and returns the outputs
// in input order. The first error cancels the context handed to the other
// calls and is returned alone; no partial output is ever returned.
func Map[In, Out any](ctx context.Context, in []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	out := make([]Out, len(in))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range in {
		g.Go(func() error {
			v, err := fn(gctx, item)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

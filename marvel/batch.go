package marvel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// defaultFetchConcurrency bounds how many entity lookups run at once.
const defaultFetchConcurrency = 10

// fetchMany runs get for each ID with bounded concurrency. Results keep the
// order of ids; the first error cancels the remaining fetches.
func fetchMany[T any](ctx context.Context, ids []int, get func(context.Context, int) (*T, error)) ([]*T, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	results := make([]*T, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultFetchConcurrency)

	for i, id := range ids {
		g.Go(func() error {
			entity, err := get(ctx, id)
			if err != nil {
				return err
			}
			results[i] = entity
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package layout

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Batch generates n layouts concurrently on at most workers goroutines
// (workers < 1 means GOMAXPROCS).
//
// Layout i draws from its own RNG stream derived from g's RNG and i. Streams
// are derived in index order before any work starts, so the result depends
// only on g's seed and n, never on worker count or scheduling. Batch consumes
// n values from g's RNG and must not run concurrently with Generate.
//
// The first generation error cancels the remaining work and is returned.
// A cancelled ctx returns ctx.Err().
func Batch(ctx context.Context, g *Generator, n, workers int) ([]*LevelLayout, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: batch size must not be negative (%d)", ErrOptionViolation, n)
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]*LevelLayout, n)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := 0; i < n; i++ {
		i := i
		rng := deriveRNG(g.rng, uint64(i))
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			l, err := g.GenerateWith(rng)
			if err != nil {
				return fmt.Errorf("layout %d: %w", i, err)
			}
			out[i] = l
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

package almanac

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// LowestLocation resolves every range through p using up to workers
// goroutines and returns the smallest destination reached. Zero-length
// ranges contribute nothing; if nothing is left ErrEmptyReduction is returned.
func LowestLocation(ctx context.Context, p *Pipeline, ranges []Range, workers int) (uint64, error) {
	if workers < 1 {
		workers = 1
	}

	var (
		mu     sync.Mutex
		lowest uint64
		found  bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, r := range ranges {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			resolved := p.ResolveRange(r)
			if len(resolved) == 0 {
				return nil
			}
			m, err := MinimumDestination(resolved)
			if err != nil {
				return fmt.Errorf("failed to reduce range %+v: %w", r, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if !found || m < lowest {
				lowest = m
				found = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrEmptyReduction
	}

	return lowest, nil
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sweep simulates g once for each pool size from 1 to maxWorkers, using the
// remaining settings of s, and returns the elapsed times indexed by pool size
// minus one. The simulations run concurrently, bounded by GOMAXPROCS. The
// first failing simulation, or cancellation of ctx, stops the sweep.
func (s *Simulator) Sweep(ctx context.Context, g *Graph, maxWorkers int) ([]int, error) {
	if maxWorkers < 1 {
		return nil, fmt.Errorf("%w: sweep needs at least 1 worker, got %d", ErrInvalidConfig, maxWorkers)
	}
	elapsed := make([]int, maxWorkers)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := range maxWorkers {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			sized := *s
			sized.config.Workers = i + 1
			res, err := sized.Run(g)
			if err != nil {
				return fmt.Errorf("%d workers: %w", i+1, err)
			}
			elapsed[i] = res.Elapsed
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return elapsed, nil
}

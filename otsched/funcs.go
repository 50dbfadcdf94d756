// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otsched

import (
	"context"

	"github.com/petenewcomb/stepsched"
	"go.opentelemetry.io/otel/attribute"
)

// ResolveFunc returns an Op that resolves g with [stepsched.Resolve].
func ResolveFunc(g *stepsched.Graph) Op[stepsched.Order] {
	return func(ctx context.Context) (stepsched.Order, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return stepsched.Resolve(g)
	}
}

// RunFunc returns an Op that simulates g with s.
func RunFunc(s *stepsched.Simulator, g *stepsched.Graph) Op[*stepsched.Result] {
	return func(ctx context.Context) (*stepsched.Result, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return s.Run(g)
	}
}

// SweepFunc returns an Op that sweeps g over pool sizes 1 through maxWorkers.
func SweepFunc(s *stepsched.Simulator, g *stepsched.Graph, maxWorkers int) Op[[]int] {
	return func(ctx context.Context) ([]int, error) {
		return s.Sweep(ctx, g, maxWorkers)
	}
}

// resultAttributes describes the results of the operations above. Results of
// other types yield no attributes.
func resultAttributes(result any) []attribute.KeyValue {
	switch r := result.(type) {
	case stepsched.Order:
		return []attribute.KeyValue{
			attribute.String("stepsched.order", r.String()),
			attribute.Int("stepsched.tasks", len(r)),
		}
	case *stepsched.Result:
		if r == nil {
			return nil
		}
		return []attribute.KeyValue{
			attribute.String("stepsched.order", r.Order.String()),
			attribute.Int("stepsched.tasks", len(r.Order)),
			attribute.Int("stepsched.elapsed", r.Elapsed),
		}
	case []int:
		return []attribute.KeyValue{
			attribute.IntSlice("stepsched.sweep", r),
		}
	default:
		return nil
	}
}

// elapsedOf extracts the simulated elapsed time from a result, if it has one.
func elapsedOf(result any) (int, bool) {
	if r, ok := result.(*stepsched.Result); ok && r != nil {
		return r.Elapsed, true
	}
	return 0, false
}

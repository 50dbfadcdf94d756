// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otsched

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

const scope = "otsched"

// Traced runs op inside a span with the given operation name. The span is
// annotated with the order, task count and elapsed time of stepsched results,
// and marked as failed if op returns an error. The returned result carries the
// new span's context.
func Traced[T any](operationName string, op Op[T]) Op[Propagated[T]] {
	propagated := Propagate(op)

	return func(ctx context.Context) (Propagated[T], error) {
		ctx, span := otel.Tracer(scope).Start(ctx, operationName)
		defer span.End()

		result, err := propagated(ctx)
		span.SetAttributes(resultAttributes(result.Value)...)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		result.TraceContext = span.SpanContext()
		return result, err
	}
}

// WithTracing is like [Traced] but leaves the result type unchanged.
func WithTracing[T any](operationName string, op Op[T]) Op[T] {
	traced := Traced(operationName, op)
	return func(ctx context.Context) (T, error) {
		result, err := traced(ctx)
		return result.Value, err
	}
}

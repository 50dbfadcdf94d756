// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package otsched provides OpenTelemetry and zap instrumentation for the
// stepsched resolver and simulator. Each wrapper takes an [Op], a
// context-aware operation such as [ResolveFunc] or [RunFunc], and returns
// an Op with the same result.
package otsched

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// An Op is a unit of scheduling work that can be wrapped with
// instrumentation.
type Op[T any] func(ctx context.Context) (T, error)

// Propagated pairs an operation's result with the span context it ran under,
// so follow-up work can be parented to it even after the original context is
// gone.
type Propagated[T any] struct {
	// Value is the result returned by the wrapped operation.
	Value T
	// TraceContext is the span context to continue from.
	TraceContext trace.SpanContext
}

// Propagate wraps op so its result carries the span context of the incoming
// context.
func Propagate[T any](op Op[T]) Op[Propagated[T]] {
	return func(ctx context.Context) (Propagated[T], error) {
		existingTraceCtx := trace.SpanFromContext(ctx).SpanContext()
		value, err := op(ctx)
		return Propagated[T]{
			Value:        value,
			TraceContext: existingTraceCtx,
		}, err
	}
}

// Continue returns a context whose remote parent is the span recorded in p.
// If p carries no valid span context, ctx is returned unchanged.
func Continue[T any](ctx context.Context, p Propagated[T]) context.Context {
	if !p.TraceContext.IsValid() {
		return ctx
	}
	return trace.ContextWithRemoteSpanContext(ctx, p.TraceContext)
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otsched

// Instrumented combines logging, metrics and tracing into a single wrapper.
//
// Example:
//
//	run := otsched.Instrumented("simulate", otsched.RunFunc(sim, graph))
//	res, err := run(ctx)
//	fmt.Println(res.Value.Elapsed)
func Instrumented[T any](operationName string, op Op[T]) Op[Propagated[T]] {
	// Apply wrappers inside-out: logging, then metrics, then tracing.
	logged := Logged(operationName, op)
	metered := Metered(operationName, logged)
	return Traced(operationName, metered)
}

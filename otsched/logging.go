// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otsched

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Logged logs the start and completion of op to the global zap logger,
// including wall-clock timing and any error.
func Logged[T any](operationName string, op Op[T]) Op[T] {
	return func(ctx context.Context) (T, error) {
		logger := zap.L()

		logger.Debug("Starting operation",
			zap.String("operation", operationName),
			zap.String("component", scope))

		startTime := time.Now()
		result, err := op(ctx)
		duration := time.Since(startTime)

		if err != nil {
			logger.Error("Operation failed",
				zap.String("operation", operationName),
				zap.String("component", scope),
				zap.Duration("duration", duration),
				zap.Error(err))
			return result, err
		}

		fields := []zap.Field{
			zap.String("operation", operationName),
			zap.String("component", scope),
			zap.Duration("duration", duration),
		}
		if elapsed, ok := elapsedOf(result); ok {
			fields = append(fields, zap.Int("elapsed", elapsed))
		}
		logger.Debug("Operation completed", fields...)
		return result, nil
	}
}

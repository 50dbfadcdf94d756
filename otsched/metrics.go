// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package otsched

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

func meter() metric.Meter {
	return otel.GetMeterProvider().Meter(scope)
}

// Metered records a count, a wall-clock duration histogram and an error count
// for op under metricName. Simulation results additionally record their
// elapsed ticks in a metricName+".elapsed" histogram.
func Metered[T any](metricName string, op Op[T]) Op[T] {
	return func(ctx context.Context) (T, error) {
		startTime := time.Now()
		m := meter()

		opCounter, _ := m.Int64Counter(metricName + ".count")
		opDuration, _ := m.Float64Histogram(metricName + ".duration")

		opCounter.Add(ctx, 1)

		result, err := op(ctx)

		opDuration.Record(ctx, time.Since(startTime).Seconds())

		if err != nil {
			errorCounter, _ := m.Int64Counter(metricName + ".errors")
			errorCounter.Add(ctx, 1)
		} else if elapsed, ok := elapsedOf(result); ok {
			elapsedHist, _ := m.Int64Histogram(metricName + ".elapsed")
			elapsedHist.Record(ctx, int64(elapsed))
		}

		return result, err
	}
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"fmt"

	"go.uber.org/zap"
)

// DurationFunc returns the number of ticks a task occupies a worker. It must
// return at least 1.
type DurationFunc func(Task) int

// Result describes a completed simulation.
type Result struct {
	// Elapsed is the clock value of the tick during which the last task
	// finished. It is zero for an empty graph.
	Elapsed int
	// Order lists the tasks in the order they were handed to workers.
	Order Order
	// Trace holds the start and finish events of the run.
	Trace *Trace
}

// A Simulator schedules the tasks of a [Graph] onto a pool of simulated
// workers. A Simulator holds no per-run state, so one value may be used for
// any number of concurrent runs.
type Simulator struct {
	config   Config
	duration DurationFunc
	logger   *zap.Logger
}

// NewSimulator creates a simulator for the given configuration. Task durations
// default to [Duration] with cfg.BaseDuration. A nil logger disables logging.
// Panics if cfg is invalid.
func NewSimulator(cfg Config, logger *zap.Logger) *Simulator {
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	base := cfg.BaseDuration
	return &Simulator{
		config: cfg,
		duration: func(t Task) int {
			return Duration(t, base)
		},
		logger: logger,
	}
}

// WithDuration returns a copy of s that uses fn to compute task durations.
func (s *Simulator) WithDuration(fn DurationFunc) *Simulator {
	if fn == nil {
		panic("duration func must be non-nil")
	}
	c := *s
	c.duration = fn
	return &c
}

// Config returns the configuration s was created with.
func (s *Simulator) Config() Config {
	return s.config
}

// Run simulates g tick by tick. Each tick first hands the alphabetically
// smallest ready tasks to idle workers, then advances the clock and every busy
// worker by one unit, then frees the workers whose task reached its duration,
// and finally queues any task whose prerequisites have now all finished. A
// task finishing during tick T therefore frees its worker for tick T+1.
//
// Ready tasks are queued before the first tick, so no tick passes with the
// whole pool idle. If the pool falls idle with tasks still unstarted, Run
// returns the partial result and an error wrapping [ErrCycle].
func (s *Simulator) Run(g *Graph) (*Result, error) {
	sc := newScan(g)
	pool := NewPool(s.config.Workers)
	res := &Result{
		Order: make(Order, 0, g.Len()),
		Trace: newTrace(s.config.TraceLimit),
	}

	for !sc.done() {
		// Dispatch
		for pool.IdleCount() > 0 && sc.hasReady() {
			t, _ := sc.next()
			d := s.duration(t)
			w := pool.Assign(t, d)
			res.Order = append(res.Order, t)
			res.Trace.record(Event{Clock: pool.Clock(), Worker: w, Task: t, Kind: EventStart})
			s.logger.Debug("Dispatched task",
				zap.Int("clock", pool.Clock()),
				zap.Int("worker", w),
				zap.Stringer("task", t),
				zap.Int("duration", d))
		}

		if !pool.Busy() {
			res.Elapsed = pool.Clock()
			return res, fmt.Errorf("%w: %q blocked after %q", ErrCycle, sc.blocked(), res.Order)
		}

		// Advance and complete
		for _, c := range pool.Tick() {
			sc.complete(c.Task)
			res.Trace.record(Event{Clock: pool.Clock(), Worker: c.Worker, Task: c.Task, Kind: EventFinish})
			s.logger.Debug("Finished task",
				zap.Int("clock", pool.Clock()),
				zap.Int("worker", c.Worker),
				zap.Stringer("task", c.Task))
		}

		// Re-evaluate
		sc.refresh()
	}

	res.Elapsed = pool.Clock()
	s.logger.Info("Simulation complete",
		zap.Int("workers", s.config.Workers),
		zap.Int("tasks", g.Len()),
		zap.Int("elapsed", res.Elapsed))
	return res, nil
}

// Simulate runs g on the given number of workers with durations computed by
// [Duration] from base, and returns the elapsed time.
func Simulate(g *Graph, workers, base int) (int, error) {
	cfg := Config{Workers: workers, BaseDuration: base}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	res, err := NewSimulator(cfg, nil).Run(g)
	if err != nil {
		return 0, err
	}
	return res.Elapsed, nil
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"fmt"
)

// WorkerState is either [Idle] or [Working].
type WorkerState interface {
	workerState()
}

// Idle is the state of a worker with no task.
type Idle struct{}

// Working is the state of a worker that has spent Elapsed of the Duration
// ticks needed to finish Task.
type Working struct {
	Task     Task
	Elapsed  int
	Duration int
}

func (Idle) workerState()    {}
func (Working) workerState() {}

// A Worker is a simulated execution slot that holds at most one task. The
// zero value is an idle worker.
type Worker struct {
	ID    int
	state WorkerState
}

// State returns the current state of the worker.
func (w *Worker) State() WorkerState {
	if w.state == nil {
		return Idle{}
	}
	return w.state
}

// Idle reports whether the worker can accept a task.
func (w *Worker) Idle() bool {
	_, ok := w.State().(Idle)
	return ok
}

// Assign starts task on the worker with elapsed time zero. Panics if the
// worker is busy or duration is less than one tick.
func (w *Worker) Assign(task Task, duration int) {
	if !w.Idle() {
		panic("worker is busy")
	}
	if duration < 1 {
		panic("task duration must be positive")
	}
	w.state = Working{Task: task, Duration: duration}
}

// Tick advances the worker's current task by one unit of time. When the task
// has accumulated its full duration the worker becomes idle again and Tick
// returns the finished task and true. An idle worker is unaffected.
func (w *Worker) Tick() (Task, bool) {
	working, ok := w.State().(Working)
	if !ok {
		return 0, false
	}
	working.Elapsed++
	if working.Elapsed >= working.Duration {
		w.state = Idle{}
		return working.Task, true
	}
	w.state = working
	return 0, false
}

// Format implements fmt.Formatter for log and test output.
func (w *Worker) Format(f fmt.State, verb rune) {
	if verb != 'v' {
		panic("unsupported verb")
	}
	switch s := w.State().(type) {
	case Idle:
		_, _ = fmt.Fprintf(f, "Worker#%d: idle", w.ID)
	case Working:
		_, _ = fmt.Fprintf(f, "Worker#%d: %v %d/%d", w.ID, s.Task, s.Elapsed, s.Duration)
	default:
		panic(fmt.Sprintf("unknown WorkerState type: %T", s))
	}
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

// A Pool is a fixed, ordered set of simulated workers sharing one clock.
// Use [NewPool] to create one.
type Pool struct {
	workers []Worker
	clock   int
}

// NewPool creates a pool of n idle workers with the clock at zero. Panics if n
// is less than one.
func NewPool(n int) *Pool {
	if n < 1 {
		panic("pool size must be positive")
	}
	p := &Pool{workers: make([]Worker, n)}
	for i := range p.workers {
		p.workers[i] = Worker{ID: i, state: Idle{}}
	}
	return p
}

// Clock returns the number of ticks elapsed so far.
func (p *Pool) Clock() int {
	return p.clock
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return len(p.workers)
}

// IdleCount returns the number of workers that can accept a task.
func (p *Pool) IdleCount() int {
	n := 0
	for i := range p.workers {
		if p.workers[i].Idle() {
			n++
		}
	}
	return n
}

// Busy reports whether any worker holds a task.
func (p *Pool) Busy() bool {
	return p.IdleCount() < len(p.workers)
}

// Workers returns a snapshot of the workers in pool order.
func (p *Pool) Workers() []Worker {
	out := make([]Worker, len(p.workers))
	copy(out, p.workers)
	return out
}

// Assign gives task to the lowest-numbered idle worker and returns that
// worker's ID. Callers must check [Pool.IdleCount] first: assigning to a pool
// with no idle worker panics.
func (p *Pool) Assign(task Task, duration int) int {
	for i := range p.workers {
		w := &p.workers[i]
		if w.Idle() {
			w.Assign(task, duration)
			return w.ID
		}
	}
	panic("no idle worker")
}

// Tick advances the clock by one unit and every busy worker along with it. It
// returns the tasks that finished during this tick in worker order; their
// workers are idle again before Tick returns.
func (p *Pool) Tick() []Completion {
	p.clock++
	var finished []Completion
	for i := range p.workers {
		w := &p.workers[i]
		if t, ok := w.Tick(); ok {
			finished = append(finished, Completion{Worker: w.ID, Task: t})
		}
	}
	return finished
}

// Completion records a task completed by a worker during a tick.
type Completion struct {
	Worker int
	Task   Task
}

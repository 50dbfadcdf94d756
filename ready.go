// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"cmp"

	"github.com/addrummond/heap"
)

// readyTask orders the ready heap alphabetically.
type readyTask struct {
	Task Task
}

func (a *readyTask) Cmp(b *readyTask) int {
	return cmp.Compare(a.Task, b.Task)
}

// scan tracks one pass over a graph. A task moves from unseen to queued (in
// the ready heap) to seen (taken by the caller) to completed. The state is
// owned by a single Resolve or Simulator.Run call.
type scan struct {
	graph     *Graph
	queued    map[Task]bool
	seen      map[Task]bool
	completed map[Task]bool
	ready     heap.Heap[readyTask, heap.Min]
}

func newScan(g *Graph) *scan {
	s := &scan{
		graph:     g,
		queued:    make(map[Task]bool, g.Len()),
		seen:      make(map[Task]bool, g.Len()),
		completed: make(map[Task]bool, g.Len()),
	}
	s.refresh()
	return s
}

// refresh queues every task that is not yet queued, seen or completed and
// whose prerequisites have all completed. It returns the number of tasks
// newly queued.
func (s *scan) refresh() int {
	added := 0
	for _, t := range s.graph.tasks {
		if s.queued[t] || s.seen[t] || s.completed[t] {
			continue
		}
		if s.graph.satisfied(t, s.completed) {
			s.queued[t] = true
			heap.PushOrderable(&s.ready, readyTask{Task: t})
			added++
		}
	}
	return added
}

// next removes the alphabetically smallest ready task and marks it seen.
func (s *scan) next() (Task, bool) {
	rt, ok := heap.PopOrderable(&s.ready)
	if !ok {
		return 0, false
	}
	delete(s.queued, rt.Task)
	s.seen[rt.Task] = true
	return rt.Task, true
}

// hasReady reports whether at least one task is waiting in the ready heap.
func (s *scan) hasReady() bool {
	return len(s.queued) > 0
}

func (s *scan) complete(t Task) {
	s.completed[t] = true
}

func (s *scan) done() bool {
	return len(s.completed) == s.graph.Len()
}

// blocked returns the tasks that have not been started, in alphabetical order.
func (s *scan) blocked() Order {
	var out Order
	for _, t := range s.graph.tasks {
		if !s.seen[t] && !s.queued[t] && !s.completed[t] {
			out = append(out, t)
		}
	}
	return out
}

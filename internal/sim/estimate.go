// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"cmp"
	"slices"

	"github.com/addrummond/heap"
	"github.com/gammazero/deque"
	"github.com/petenewcomb/stepsched"
	"github.com/stretchr/testify/require"
)

// Estimate computes the outcome of a plan by jumping from one completion time
// to the next. All completions that share a time are applied before any newly
// ready task is dispatched, matching the simulator's tick ordering.
func Estimate(t require.TestingT, plan *Plan, debug bool, logf func(string, ...any)) *Result {
	chk := require.New(t)
	graph := plan.Graph

	remaining := make(map[stepsched.Task]int, graph.Len())
	var ready []stepsched.Task
	for _, task := range graph.Tasks() {
		n := len(graph.Prerequisites(task))
		remaining[task] = n
		if n == 0 {
			ready = append(ready, task)
		}
	}

	var idleWorkers deque.Deque[int]
	for w := range plan.Workers {
		idleWorkers.PushBack(w)
	}

	var eventHeap heap.Heap[completionEvent, heap.Min]
	simTime := 0
	res := &Result{Order: make(stepsched.Order, 0, graph.Len())}

	dispatch := func() {
		slices.Sort(ready)
		for idleWorkers.Len() > 0 && len(ready) > 0 {
			task := ready[0]
			ready = ready[1:]
			worker := idleWorkers.PopFront()
			endTime := simTime + stepsched.Duration(task, plan.BaseDuration)
			if debug {
				logf("%d: worker %d starting %v, ends at %d", simTime, worker, task, endTime)
			}
			heap.PushOrderable(&eventHeap, completionEvent{
				Time:   endTime,
				Worker: worker,
				Task:   task,
			})
			res.Order = append(res.Order, task)
		}
	}

	dispatch()
	finishedCount := 0
	var concurrentEvents []completionEvent
	for {
		event, ok := heap.PopOrderable(&eventHeap)
		if !ok {
			break
		}
		concurrentEvents = concurrentEvents[:0]
		for {
			concurrentEvents = append(concurrentEvents, event)
			event, ok = heap.Peek(&eventHeap)
			if !ok || event.Time != concurrentEvents[0].Time {
				break
			}
			_, _ = heap.PopOrderable(&eventHeap)
		}
		simTime = concurrentEvents[0].Time
		for _, event := range concurrentEvents {
			if debug {
				logf("%d: worker %d finished %v", simTime, event.Worker, event.Task)
			}
			finishedCount++
			idleWorkers.PushBack(event.Worker)
			for _, dep := range graph.Dependents(event.Task) {
				remaining[dep]--
				chk.GreaterOrEqual(remaining[dep], 0)
				if remaining[dep] == 0 {
					ready = append(ready, dep)
				}
			}
		}
		dispatch()
	}

	chk.Equal(graph.Len(), finishedCount, "plan left tasks unfinished")
	chk.Equal(plan.Workers, idleWorkers.Len(), "workers still busy at end of plan")
	res.Elapsed = simTime
	return res
}

type completionEvent struct {
	Time   int
	Worker int
	Task   stepsched.Task
}

func (a *completionEvent) Cmp(b *completionEvent) int {
	return cmp.Compare(a.Time, b.Time)
}

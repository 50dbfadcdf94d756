// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"fmt"
	"strings"

	"github.com/gammazero/deque"
)

// EventKind distinguishes the two transitions recorded in a [Trace].
type EventKind int

const (
	EventStart EventKind = iota
	EventFinish
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "started"
	case EventFinish:
		return "finished"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// An Event records a worker starting or finishing a task. Clock is the pool
// clock at the moment of the transition: a task started at clock 3 with a
// duration of 2 finishes at clock 5.
type Event struct {
	Clock  int
	Worker int
	Task   Task
	Kind   EventKind
}

func (e Event) String() string {
	return fmt.Sprintf("%d: worker %d %v %v", e.Clock, e.Worker, e.Kind, e.Task)
}

// A Trace is the chronological list of events of one simulation. When built
// with a positive limit only the most recent limit events are kept.
type Trace struct {
	events  deque.Deque[Event]
	limit   int
	dropped int
}

func newTrace(limit int) *Trace {
	return &Trace{limit: limit}
}

func (tr *Trace) record(e Event) {
	tr.events.PushBack(e)
	if tr.limit > 0 && tr.events.Len() > tr.limit {
		tr.events.PopFront()
		tr.dropped++
	}
}

// Len returns the number of events retained.
func (tr *Trace) Len() int {
	return tr.events.Len()
}

// Dropped returns how many of the oldest events were discarded to honor the
// limit.
func (tr *Trace) Dropped() int {
	return tr.dropped
}

// At returns the i'th retained event, oldest first.
func (tr *Trace) At(i int) Event {
	return tr.events.At(i)
}

// Events returns a copy of the retained events, oldest first.
func (tr *Trace) Events() []Event {
	out := make([]Event, tr.events.Len())
	for i := range out {
		out[i] = tr.events.At(i)
	}
	return out
}

func (tr *Trace) String() string {
	var sb strings.Builder
	if tr.dropped > 0 {
		fmt.Fprintf(&sb, "(%d earlier events dropped)\n", tr.dropped)
	}
	for i := range tr.events.Len() {
		sb.WriteString(tr.events.At(i).String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

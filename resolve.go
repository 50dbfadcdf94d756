// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"fmt"
)

// Resolve returns the order in which the tasks of g complete when they are
// processed one at a time: a task never precedes any of its prerequisites,
// and whenever several tasks are ready the alphabetically smallest goes next.
//
// If some tasks can never become ready, Resolve returns the order resolved so
// far together with an error wrapping [ErrCycle].
func Resolve(g *Graph) (Order, error) {
	s := newScan(g)
	order := make(Order, 0, g.Len())
	for !s.done() {
		t, ok := s.next()
		if !ok {
			return order, fmt.Errorf("%w: %q blocked after %q", ErrCycle, s.blocked(), order)
		}
		order = append(order, t)
		s.complete(t)
		s.refresh()
	}
	return order, nil
}

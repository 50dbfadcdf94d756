// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"fmt"
	"maps"
	"slices"
)

// A Graph maps each task to the set of tasks that must finish before it can
// begin. Every task named by a constraint is present, including tasks that
// have no prerequisites of their own.
//
// A Graph is immutable once built and may be shared between goroutines.
type Graph struct {
	prereqs    map[Task]map[Task]struct{}
	dependents map[Task][]Task
	tasks      []Task
}

// NewGraph builds a graph from the given constraints. Duplicate constraints
// are merged. Cycles are not detected here; they are reported by [Resolve] and
// [Simulator.Run].
func NewGraph(constraints []Constraint) *Graph {
	g := &Graph{
		prereqs:    make(map[Task]map[Task]struct{}),
		dependents: make(map[Task][]Task),
	}
	for _, c := range constraints {
		g.ensure(c.Prerequisite)
		deps := g.ensure(c.Dependent)
		if _, ok := deps[c.Prerequisite]; ok {
			continue
		}
		deps[c.Prerequisite] = struct{}{}
		g.dependents[c.Prerequisite] = append(g.dependents[c.Prerequisite], c.Dependent)
	}
	g.tasks = slices.Sorted(maps.Keys(g.prereqs))
	for _, ds := range g.dependents {
		slices.Sort(ds)
	}
	return g
}

func (g *Graph) ensure(t Task) map[Task]struct{} {
	deps, ok := g.prereqs[t]
	if !ok {
		deps = make(map[Task]struct{})
		g.prereqs[t] = deps
	}
	return deps
}

// Len returns the number of tasks in the graph.
func (g *Graph) Len() int {
	return len(g.tasks)
}

// Tasks returns every task in alphabetical order.
func (g *Graph) Tasks() []Task {
	return slices.Clone(g.tasks)
}

// Has reports whether t is part of the graph.
func (g *Graph) Has(t Task) bool {
	_, ok := g.prereqs[t]
	return ok
}

// Prerequisites returns the tasks that must finish before t, in alphabetical
// order.
func (g *Graph) Prerequisites(t Task) []Task {
	return slices.Sorted(maps.Keys(g.prereqs[t]))
}

// Dependents returns the tasks that list t as a prerequisite, in alphabetical
// order.
func (g *Graph) Dependents(t Task) []Task {
	return slices.Clone(g.dependents[t])
}

// satisfied reports whether every prerequisite of t is in done.
func (g *Graph) satisfied(t Task, done map[Task]bool) bool {
	for p := range g.prereqs[t] {
		if !done[p] {
			return false
		}
	}
	return true
}

// Format implements fmt.Formatter. The %v verb prints a short summary and %#v
// lists each task with its prerequisites.
func (g *Graph) Format(f fmt.State, verb rune) {
	if verb != 'v' {
		panic("unsupported verb")
	}
	if !f.Flag('#') {
		_, _ = fmt.Fprintf(f, "Graph{tasks=%d}", g.Len())
		return
	}
	_, _ = fmt.Fprintf(f, "Graph{tasks=%d}", g.Len())
	for _, t := range g.tasks {
		_, _ = fmt.Fprintf(f, "\n  %v <- %v", t, Order(g.Prerequisites(t)))
	}
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"fmt"

	"github.com/petenewcomb/stepsched"
	"pgregory.net/rapid"
)

var alphabet = func() []stepsched.Task {
	out := make([]stepsched.Task, 0, 26)
	for r := 'A'; r <= 'Z'; r++ {
		out = append(out, stepsched.Task(r))
	}
	return out
}()

// Plan is a generated scheduling problem.
type Plan struct {
	// Arrangement is the random order in which letters were drawn. Every
	// constraint points from an earlier to a later letter of the
	// arrangement, which is what keeps the plan acyclic.
	Arrangement  stepsched.Order
	Constraints  []stepsched.Constraint
	Graph        *stepsched.Graph
	Workers      int
	BaseDuration int
}

// NewPlan draws a random acyclic plan according to config.
func NewPlan(t *rapid.T, config *Config) *Plan {
	taskCount := config.TaskCount.Draw(t, "TaskCount")
	if taskCount > len(alphabet) {
		panic(fmt.Sprintf("TaskCount %d exceeds alphabet size", taskCount))
	}
	letters := rapid.Permutation(alphabet).Draw(t, "Letters")[:taskCount]

	plan := &Plan{
		Arrangement: stepsched.Order(letters),
	}
	for i, prereq := range letters {
		for _, dep := range letters[i+1:] {
			if config.Edge.Draw(t, fmt.Sprintf("Edge[%v,%v]", prereq, dep)) {
				plan.Constraints = append(plan.Constraints, stepsched.Constraint{
					Prerequisite: prereq,
					Dependent:    dep,
				})
			}
		}
	}
	plan.Graph = stepsched.NewGraph(plan.Constraints)
	plan.Workers = config.Workers.Draw(t, "Workers")
	plan.BaseDuration = config.BaseDuration.Draw(t, "BaseDuration")

	t.Logf("%#v", plan)
	return plan
}

// TotalDuration returns the sum of all task durations, which is the elapsed
// time of a single worker.
func (p *Plan) TotalDuration() int {
	total := 0
	for _, task := range p.Graph.Tasks() {
		total += stepsched.Duration(task, p.BaseDuration)
	}
	return total
}

// CriticalPath returns the duration of the longest prerequisite chain, a lower
// bound on the elapsed time for any number of workers.
func (p *Plan) CriticalPath() int {
	finish := make(map[stepsched.Task]int, p.Graph.Len())
	longest := 0
	// Arrangement order is a topological order of the graph.
	for _, task := range p.Arrangement {
		if !p.Graph.Has(task) {
			continue
		}
		start := 0
		for _, prereq := range p.Graph.Prerequisites(task) {
			start = max(start, finish[prereq])
		}
		finish[task] = start + stepsched.Duration(task, p.BaseDuration)
		longest = max(longest, finish[task])
	}
	return longest
}

// Format implements fmt.Formatter for pretty-printing a plan.
func (p *Plan) Format(f fmt.State, verb rune) {
	if verb != 'v' {
		panic("unsupported verb")
	}
	if f.Flag('#') {
		p.Dump(f, "")
	} else {
		_, _ = fmt.Fprintf(f, "Plan{tasks=%d workers=%d base=%d}", p.Graph.Len(), p.Workers, p.BaseDuration)
	}
}

func (p *Plan) Dump(fs fmt.State, indent string) {
	_, _ = fmt.Fprintf(fs, "%sPlan: arrangement=%v workers=%d base=%d", indent, p.Arrangement, p.Workers, p.BaseDuration)
	for _, c := range p.Constraints {
		_, _ = fmt.Fprintf(fs, "\n%s  %v -> %v", indent, c.Prerequisite, c.Dependent)
	}
}

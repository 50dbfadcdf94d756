// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched_test

import (
	"slices"
	"testing"

	"github.com/petenewcomb/stepsched"
	"github.com/petenewcomb/stepsched/internal/sim"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResolveReference(t *testing.T) {
	chk := require.New(t)
	order, err := stepsched.Resolve(stepsched.NewGraph(referenceConstraints()))
	chk.NoError(err)
	chk.Equal("CABDFE", order.String())
}

func TestResolveEmpty(t *testing.T) {
	chk := require.New(t)
	order, err := stepsched.Resolve(stepsched.NewGraph(nil))
	chk.NoError(err)
	chk.Empty(order)
	chk.Equal("", order.String())
}

func TestResolveIndependentTasksAreAlphabetical(t *testing.T) {
	chk := require.New(t)
	g := stepsched.NewGraph([]stepsched.Constraint{
		{Prerequisite: 'Q', Dependent: 'R'},
		{Prerequisite: 'B', Dependent: 'C'},
		{Prerequisite: 'X', Dependent: 'A'},
	})
	order, err := stepsched.Resolve(g)
	chk.NoError(err)
	chk.Equal("BCQRXA", order.String())
}

func TestResolveCycle(t *testing.T) {
	chk := require.New(t)
	g := stepsched.NewGraph([]stepsched.Constraint{
		{Prerequisite: 'A', Dependent: 'B'},
		{Prerequisite: 'B', Dependent: 'C'},
		{Prerequisite: 'C', Dependent: 'B'},
		{Prerequisite: 'C', Dependent: 'D'},
	})
	order, err := stepsched.Resolve(g)
	chk.ErrorIs(err, stepsched.ErrCycle)
	chk.ErrorContains(err, `"BCD" blocked`)
	chk.Equal("A", order.String())
}

func TestResolveSelfConstraint(t *testing.T) {
	chk := require.New(t)
	g := stepsched.NewGraph([]stepsched.Constraint{{Prerequisite: 'A', Dependent: 'A'}})
	_, err := stepsched.Resolve(g)
	chk.ErrorIs(err, stepsched.ErrCycle)
}

func TestResolveProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		chk := require.New(t)
		plan := sim.NewPlan(t, &sim.DefaultConfig)
		order, err := stepsched.Resolve(plan.Graph)
		chk.NoError(err)

		// Every task exactly once.
		chk.ElementsMatch(plan.Graph.Tasks(), []stepsched.Task(order))

		done := make(map[stepsched.Task]bool, len(order))
		for _, task := range order {
			// Prerequisites first.
			for _, prereq := range plan.Graph.Prerequisites(task) {
				chk.True(done[prereq], "%v resolved before its prerequisite %v", task, prereq)
			}
			// Smallest ready task next.
			chk.Equal(smallestReady(plan.Graph, done), task)
			done[task] = true
		}
	})
}

func smallestReady(g *stepsched.Graph, done map[stepsched.Task]bool) stepsched.Task {
	var ready []stepsched.Task
	for _, task := range g.Tasks() {
		if done[task] {
			continue
		}
		if !slices.ContainsFunc(g.Prerequisites(task), func(p stepsched.Task) bool { return !done[p] }) {
			ready = append(ready, task)
		}
	}
	if len(ready) == 0 {
		return 0
	}
	return slices.Min(ready)
}

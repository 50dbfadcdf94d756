// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched_test

import (
	"context"
	"testing"

	"github.com/petenewcomb/stepsched"
	"github.com/stretchr/testify/require"
)

func TestSweepReference(t *testing.T) {
	chk := require.New(t)
	s := stepsched.NewSimulator(stepsched.Config{Workers: 1}, nil)
	elapsed, err := s.Sweep(context.Background(), stepsched.NewGraph(referenceConstraints()), 6)
	chk.NoError(err)
	chk.Equal([]int{21, 15, 14, 14, 14, 14}, elapsed)
}

func TestSweepFanOut(t *testing.T) {
	chk := require.New(t)
	var constraints []stepsched.Constraint
	for _, r := range "BCDE" {
		constraints = append(constraints, stepsched.Constraint{Prerequisite: 'A', Dependent: stepsched.Task(r)})
	}
	s := stepsched.NewSimulator(stepsched.Config{Workers: 1}, nil)
	elapsed, err := s.Sweep(context.Background(), stepsched.NewGraph(constraints), 5)
	chk.NoError(err)
	// A=1 then B..E = 2,3,4,5
	chk.Equal([]int{15, 9, 8, 6, 6}, elapsed)
	for i := 1; i < len(elapsed); i++ {
		chk.LessOrEqual(elapsed[i], elapsed[i-1])
	}
}

func TestSweepChainIgnoresWorkers(t *testing.T) {
	chk := require.New(t)
	g := stepsched.NewGraph([]stepsched.Constraint{
		{Prerequisite: 'A', Dependent: 'B'},
		{Prerequisite: 'B', Dependent: 'C'},
	})
	s := stepsched.NewSimulator(stepsched.Config{Workers: 1, BaseDuration: 60}, nil)
	elapsed, err := s.Sweep(context.Background(), g, 3)
	chk.NoError(err)
	chk.Equal([]int{186, 186, 186}, elapsed)
}

func TestSweepErrors(t *testing.T) {
	chk := require.New(t)
	s := stepsched.NewSimulator(stepsched.Config{Workers: 1}, nil)
	g := stepsched.NewGraph(referenceConstraints())

	_, err := s.Sweep(context.Background(), g, 0)
	chk.ErrorIs(err, stepsched.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Sweep(ctx, g, 4)
	chk.ErrorIs(err, context.Canceled)

	cyclic := stepsched.NewGraph([]stepsched.Constraint{{Prerequisite: 'A', Dependent: 'A'}})
	_, err = s.Sweep(context.Background(), cyclic, 2)
	chk.ErrorIs(err, stepsched.ErrCycle)
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/petenewcomb/stepsched"
	"github.com/stretchr/testify/require"
)

func TestParseConstraint(t *testing.T) {
	tests := []struct {
		name string
		line string
		want stepsched.Constraint
	}{
		{"canonical", "Step C must be finished before step A can begin.", stepsched.Constraint{Prerequisite: 'C', Dependent: 'A'}},
		{"no period", "Step Z must be finished before step B can begin", stepsched.Constraint{Prerequisite: 'Z', Dependent: 'B'}},
		{"surrounding whitespace", "  Step F must be finished before step E can begin.\r", stepsched.Constraint{Prerequisite: 'F', Dependent: 'E'}},
		{"self", "Step Q must be finished before step Q can begin.", stepsched.Constraint{Prerequisite: 'Q', Dependent: 'Q'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := stepsched.ParseConstraint(tt.line)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseConstraint(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParseConstraintMalformed(t *testing.T) {
	lines := []string{
		"",
		"Step  must be finished before step A can begin.",
		"Step C must be finished before step  can begin.",
		"Step must be finished before step A can begin.",
		"Step CD must be finished before step A can begin.",
		"Step c must be finished before step A can begin.",
		"Step 1 must be finished before step A can begin.",
		"Step Ä must be finished before step A can begin.",
		"C -> A",
		"Step C must finish before step A can begin.",
	}
	for _, line := range lines {
		_, err := stepsched.ParseConstraint(line)
		require.ErrorIs(t, err, stepsched.ErrMalformedConstraint, "line %q", line)
	}
}

func TestParseConstraints(t *testing.T) {
	chk := require.New(t)
	input := `Step C must be finished before step A can begin.
Step C must be finished before step F can begin.

Step A must be finished before step B can begin.
`
	got, err := stepsched.ParseConstraints(strings.NewReader(input))
	chk.NoError(err)
	want := []stepsched.Constraint{
		{Prerequisite: 'C', Dependent: 'A'},
		{Prerequisite: 'C', Dependent: 'F'},
		{Prerequisite: 'A', Dependent: 'B'},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseConstraints mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConstraintsStopsAtMalformedLine(t *testing.T) {
	chk := require.New(t)
	input := "Step C must be finished before step A can begin.\n" +
		"Step C must be finished before step  can begin.\n" +
		"Step A must be finished before step B can begin.\n"
	got, err := stepsched.ParseConstraints(strings.NewReader(input))
	chk.ErrorIs(err, stepsched.ErrMalformedConstraint)
	chk.ErrorContains(err, "line 2")
	chk.Nil(got)
}

func TestConstraintStringRoundTrip(t *testing.T) {
	chk := require.New(t)
	c := stepsched.Constraint{Prerequisite: 'X', Dependent: 'Y'}
	parsed, err := stepsched.ParseConstraint(c.String())
	chk.NoError(err)
	chk.Equal(c, parsed)
}

// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// A Constraint states that Prerequisite must finish before Dependent can
// begin.
type Constraint struct {
	Prerequisite Task
	Dependent    Task
}

func (c Constraint) String() string {
	return fmt.Sprintf("Step %v must be finished before step %v can begin.", c.Prerequisite, c.Dependent)
}

var constraintRx = regexp.MustCompile(`^Step (\S*) must be finished before step (\S*) can begin\.?$`)

// ParseConstraint parses a single line of the form
//
//	Step C must be finished before step A can begin.
//
// Surrounding whitespace and the final period are optional. The returned error
// wraps [ErrMalformedConstraint] if the line does not follow the pattern or
// either identifier is not a single upper-case letter.
func ParseConstraint(line string) (Constraint, error) {
	m := constraintRx.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Constraint{}, fmt.Errorf("%w: %q", ErrMalformedConstraint, line)
	}
	prereq, err := parseTask(m[1])
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: prerequisite in %q: %w", ErrMalformedConstraint, line, err)
	}
	dep, err := parseTask(m[2])
	if err != nil {
		return Constraint{}, fmt.Errorf("%w: dependent in %q: %w", ErrMalformedConstraint, line, err)
	}
	return Constraint{Prerequisite: prereq, Dependent: dep}, nil
}

func parseTask(s string) (Task, error) {
	if s == "" {
		return 0, fmt.Errorf("missing identifier")
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("identifier %q is not a single character", s)
	}
	t := Task(r)
	if !t.Valid() {
		return 0, fmt.Errorf("identifier %q is not an upper-case letter", s)
	}
	return t, nil
}

// ParseConstraints reads one constraint per line from r. Blank lines are
// skipped. The first malformed line stops the parse and its 1-based line
// number is included in the returned error.
func ParseConstraints(r io.Reader) ([]Constraint, error) {
	var constraints []Constraint
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseConstraint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		constraints = append(constraints, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return constraints, nil
}

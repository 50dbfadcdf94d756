// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

import (
	"strings"
)

// A Task identifies an atomic unit of work. Valid tasks are the ASCII
// upper-case letters 'A' through 'Z', ordered alphabetically.
type Task rune

// Valid reports whether t is an upper-case ASCII letter.
func (t Task) Valid() bool {
	return t >= 'A' && t <= 'Z'
}

// Rank returns the zero-based position of t in the alphabet, so 'A' has rank
// 0 and 'Z' has rank 25.
func (t Task) Rank() int {
	return int(t - 'A')
}

func (t Task) String() string {
	return string(t)
}

// Duration returns the number of ticks a worker spends on t: the base cost
// plus one tick per letter, so with base 60 task 'A' takes 61 ticks and 'Z'
// takes 86.
func Duration(t Task, base int) int {
	return base + t.Rank() + 1
}

// An Order is a sequence of tasks in the order they were (or would be)
// started.
type Order []Task

// String concatenates the task identifiers, e.g. "CABDFE".
func (o Order) String() string {
	var sb strings.Builder
	sb.Grow(len(o))
	for _, t := range o {
		sb.WriteRune(rune(t))
	}
	return sb.String()
}

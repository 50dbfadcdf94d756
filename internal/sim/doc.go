// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package sim generates random scheduling plans for property tests and
// estimates their outcome independently of the tick-by-tick simulator. A plan
// is a randomly drawn acyclic set of constraints over a random subset of the
// alphabet plus a pool size and base duration. The estimator jumps from one
// completion event to the next instead of ticking, and tracks readiness with
// unfinished-prerequisite counts instead of rescanning the graph, so agreement
// between the two is meaningful.
package sim

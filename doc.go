// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

// Package stepsched resolves ordering constraints between single-letter tasks
// ("Step C must be finished before step A can begin.") and schedules them.
//
// A [Graph] maps each task to the set of tasks that must finish before it may
// start. [Resolve] turns a graph into the one deterministic order in which a
// single worker would complete the tasks, always choosing the alphabetically
// smallest task among those that are ready.
//
// A [Simulator] runs the same graph through a fixed-size pool of simulated
// workers in discrete time. Each task occupies a worker for a number of ticks
// given by [Duration], a fixed base cost plus the task's rank in the alphabet.
// The simulation reports how many ticks pass before every task has finished.
// Simulated workers are slots, not goroutines: a run is single-threaded and
// fully deterministic. [Simulator.Sweep] runs independent simulations for a range of
// pool sizes concurrently.
package stepsched

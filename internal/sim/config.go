// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

var DefaultConfig = Config{
	TaskCount:    BiasedIntConfig{Min: 1, Med: 6, Max: 14},
	Edge:         BiasedBoolConfig{Probability: 0.3},
	Workers:      BiasedIntConfig{Min: 1, Med: 2, Max: 6},
	BaseDuration: BiasedIntConfig{Min: 0, Med: 0, Max: 60},
}

type Config struct {
	// TaskCount is the number of letters drawn before constraints are
	// generated. Letters left without any constraint do not appear in the
	// resulting graph.
	TaskCount BiasedIntConfig
	// Edge decides, for each ordered pair of drawn letters, whether the
	// earlier one becomes a prerequisite of the later one.
	Edge         BiasedBoolConfig
	Workers      BiasedIntConfig
	BaseDuration BiasedIntConfig
}

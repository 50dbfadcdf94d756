// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package sim

import (
	"github.com/petenewcomb/stepsched"
)

type Result struct {
	Elapsed int
	Order   stepsched.Order
}

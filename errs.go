// Copyright (c) Peter Newcomb. All rights reserved.
// Licensed under the MIT License.

package stepsched

type constError string

func (e constError) Error() string {
	return string(e)
}

const ErrMalformedConstraint = constError("malformed constraint")
const ErrCycle = constError("dependency cycle")
const ErrInvalidConfig = constError("invalid config")

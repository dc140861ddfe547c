// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach method context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a core mutation failed mid-construction
// or that a nil constructor was passed.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidWeight indicates a WeightFn produced a weight below 1.
var ErrInvalidWeight = errors.New("builder: weight must be ≥ 1")

// wrapf attaches "<method>: <detail>" context to err, keeping it visible to errors.Is.
func wrapf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}

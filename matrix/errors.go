// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency; callers match
// with errors.Is.

package matrix

import "errors"

var (
	// ErrNilGraph is returned when a builder receives a nil *core.Graph.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

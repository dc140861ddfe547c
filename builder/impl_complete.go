// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_complete.go - Complete(n): K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   • Edges in lexicographic order of (i, j) with i < j.
//
// Complexity: O(n²) edges; each AddEdge scans the edge list, so O(n⁴) overall.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primstep/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

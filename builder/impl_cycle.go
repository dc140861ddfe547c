// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_cycle.go - Cycle(n): a ring of n vertices.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges in stable order i → (i+1)%n for i = 0..n-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primstep/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := addVertices(g, n)
		// For i == n-1, connect back to ids[0] to close the ring.
		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_path.go - Path(n): v1—v2—…—vn.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges in stable order i → i+1 for i = 0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primstep/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

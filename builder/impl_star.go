// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_star.go - Star(n): one center joined to n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The center is the first vertex created; spokes in leaf creation order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primstep/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star S_n.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		ids := addVertices(g, n)
		center := ids[0]
		for _, leaf := range ids[1:] {
			if err := connect(g, cfg, methodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

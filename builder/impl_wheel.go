// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// impl_wheel.go - Wheel(n): a hub plus a ring of n-1 vertices.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • The hub is the first vertex created.
//   • Ring edges first (as in Cycle over ids[1:]), then spokes hub → ring in order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primstep/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		ids := addVertices(g, n)
		hub, ring := ids[0], ids[1:]
		for i := range ring {
			if err := connect(g, cfg, methodWheel, ring[i], ring[(i+1)%len(ring)]); err != nil {
				return err
			}
		}
		for _, v := range ring {
			if err := connect(g, cfg, methodWheel, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// api.go - the BuildGraph orchestrator and the Constructor contract.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Factories live in impl_*.go.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/primstep/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST validate parameters before touching g
// and emit vertices and edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against an existing graph. New vertices take the
// smallest free IDs, so existing vertices are never touched.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("BuildGraph: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addVertices appends n vertices and returns their IDs in creation order.
func addVertices(g *core.Graph, n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}

	return ids
}

// connect adds u—v with the next configured weight.
func connect(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w, err := cfg.nextWeight(method)
	if err != nil {
		return err
	}
	if err := g.AddEdge(u, v, w); err != nil {
		return wrapf(method, fmt.Sprintf("AddEdge(%d, %d, w=%d)", u, v, w), fmt.Errorf("%w: %w", ErrConstructFailed, err))
	}

	return nil
}

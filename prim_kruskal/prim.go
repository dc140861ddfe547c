// Package prim_kruskal provides a one-shot Prim's Minimum Spanning Tree (MST) entry point.
// It drives the Stepper to completion and returns the finished tree.
package prim_kruskal

import (
	"github.com/katalvlaran/primstep/core"
)

// Prim computes the Minimum Spanning Tree (MST) of g by running a Stepper
// rooted at root until it finishes.
//
// Error Conditions:
//   - ErrNilGraph      : if g is nil.
//   - ErrDisconnected  : if |V| == 0, or fewer than |V|-1 tree edges were found.
//   - ErrNoStartVertex : if root does not exist in g.
//
// Steps:
//  1. Validate g and |V|.
//  2. Initialize a Stepper at root and Step until Done.
//  3. If the tree has fewer than |V|-1 edges → ErrDisconnected.
//  4. Return tree edges in completion order and their total weight.
//
// Side effects: vertex Key/Parent fields and edge orientation on g are
// updated exactly as a stepped run would update them.
//
// Complexity: O(V³ + V²·E) with the default full-rebuild relaxation.
func Prim(g *core.Graph, root int, opts ...StepperOption) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}

	s := NewStepper(opts...)
	if err := s.Initialize(g, root); err != nil {
		return nil, 0, err
	}
	for {
		res, err := s.Step()
		if err != nil {
			return nil, 0, err
		}
		if res.Done {
			break
		}
	}

	tree := s.Tree()
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, s.TotalWeight(), nil
}

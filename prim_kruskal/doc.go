// Package prim_kruskal computes Minimum Spanning Trees (MST) on a *core.Graph,
// with a stepwise Prim engine built for visualization and Kruskal as reference.
//
// # What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why step?
//     A visualizer wants to show the tree growing one vertex at a time, with the
//     candidate edges highlighted in between. Stepper exposes exactly that:
//     every Step settles one vertex and returns a StepResult naming the settled
//     vertex and edge, the frontier, and the vertex that will be settled next.
//
// # Stepper
//
//	s := prim_kruskal.NewStepper()
//	if err := s.Initialize(g, start); err != nil { ... }
//	for {
//		res, err := s.Step()
//		if err != nil { ... }
//		render(res)              // or s.VertexRole / s.EdgeRole per element
//		if res.Done { break }
//	}
//
//   - Priority queue: minheap.MinHeap over every vertex ID, keyed by Vertex.Key.
//     After each successful relaxation the whole heap is rebuilt (O(V)). This is
//     slower than a decrease-key but fixes the order in which equal keys are
//     extracted, and with it the exact sequence of StepResults. WithDecreaseKey
//     opts into the O(log V) variant for callers that do not need that sequence.
//
//   - Neighbors come from matrix.BuildAdjacency, rebuilt on every Initialize.
//     Zero-weight edges therefore never relax anything.
//
//   - Disconnected graphs produce a forest: unreachable vertices are settled
//     with Key=+∞ and no tree edge.
//
// # One-shot algorithms
//
//   - Prim(g, root) ([]core.Edge, int64, error)
//     Drives a Stepper to completion. Returns ErrDisconnected unless the tree spans.
//
//   - Kruskal(g) ([]core.Edge, int64, error)
//     Global edge sort + union-find. Does not touch g.
//
//   - Compute(g, opts) dispatches on MSTOptions.Method.
//
// # Error Conditions
//
//   - ErrNilGraph      - g is nil.
//   - ErrNoStartVertex - Initialize with an absent start ID (also matches
//     core.ErrUnknownVertex), or InitializeFromStart with no flagged vertex.
//   - ErrInvalidState  - Step before Initialize, after Reset, or after Finished.
//   - ErrDisconnected  - one-shot algorithms on an empty or disconnected graph.
//   - ErrInvalidGraph  - Compute with an unknown method.
package prim_kruskal

// Package core provides the graph model of the Prim visualizer: a small,
// mutable, weighted undirected graph addressed by integer vertex IDs.
//
// The Graph G = (V,E) keeps:
//
//   - Vertices in an insertion-ordered arena. IDs are the smallest unused
//     positive integers, so deleting vertex 2 and adding a new one yields 2 again.
//   - Undirected weighted edges, at most one per unordered endpoint pair,
//     never a self-loop.
//   - At most one start vertex (SetStartVertex clears the previous one).
//   - Per-vertex Key/Parent scratch fields written by the MST engine.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                      // O(V²) smallest-gap ID
//	RemoveVertex(id int) error           // O(V+E), cascades incident edges
//	SetStartVertex(id int) error         // O(V)
//	FindStartVertex() (int, bool)        // O(V)
//	MaxVertexID() int                    // O(V), -1 when empty
//
//	// Edge lifecycle
//	AddEdge(id1, id2 int, w int64) error // O(V+E), ErrInvalidEdge on loop/duplicate
//	RemoveEdge(id1, id2 int) error       // O(V+E)
//	FindEdge(id1, id2 int) (*Edge, bool) // O(E), re-orients a reversed match
//
//	// Queries
//	AllVertices() []Vertex
//	AllEdges() []Edge
//	Neighbors(id int) ([]int, error)
//
// A note on FindEdge: a lookup that matches the pair in reversed order
// swaps the stored endpoints. This is observable (AllEdges reflects it) and
// is part of the contract the MST engine builds on.
//
// Graph is not safe for concurrent use; see package animate for a single
// owner that serializes access during playback.
package core

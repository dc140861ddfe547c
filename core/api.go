// File: api.go
// Role: Read-only summary getters on top of the core types.
// Policy:
//   - No mutation here (FindEdge re-orientation lives in methods_edges.go).
//   - Every exported function documents complexity.

package core

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	// VertexCount is |V|.
	VertexCount int

	// EdgeCount is |E|.
	EdgeCount int

	// MaxVertexID is the largest ID, -1 for an empty graph.
	MaxVertexID int

	// StartVertex is the designated start vertex or NoVertex.
	StartVertex int

	// TotalWeight is the sum of all edge weights.
	TotalWeight int64
}

// Stats returns a snapshot summary of the graph.
//
// Implementation:
//   - Stage 1: Count vertices and locate the start vertex and max ID in one pass.
//   - Stage 2: Count edges and sum their weights.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() Stats {
	st := Stats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		MaxVertexID: -1,
		StartVertex: NoVertex,
	}
	for _, v := range g.vertices {
		if v.ID > st.MaxVertexID {
			st.MaxVertexID = v.ID
		}
		if v.IsStart {
			st.StartVertex = v.ID
		}
	}
	for _, e := range g.edges {
		st.TotalWeight += e.Weight
	}

	return st
}

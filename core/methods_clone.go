// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone keeps vertex and edge insertion order, so an MST run on the
//     clone breaks ties exactly like a run on the original.

package core

// CloneEmpty returns a new Graph with copies of all vertices (IDs, Key,
// Parent, start flag) but no edges. Metadata maps are shared.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		vertices: make([]*Vertex, len(g.vertices)),
		edges:    make([]*Edge, 0, len(g.edges)),
	}
	for i, v := range g.vertices {
		cp := *v
		clone.vertices[i] = &cp
	}

	return clone
}

// Clone returns a deep copy of the Graph: vertices and edges.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for _, e := range g.edges {
		cp := *e
		clone.edges = append(clone.edges, &cp)
	}

	return clone
}

// Clear removes all vertices and edges.
func (g *Graph) Clear() {
	g.vertices = make([]*Vertex, 0)
	g.edges = make([]*Edge, 0)
}

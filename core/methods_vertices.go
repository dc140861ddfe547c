// File: methods_vertices.go
// Role: Vertex lifecycle & queries, start vertex designation.
//
// Determinism:
//   - VertexIDs()/AllVertices() return vertices in insertion order.
//   - AddVertex() always picks the smallest unused positive ID.
package core

// AddVertex inserts a new vertex and returns its ID.
//
// Implementation:
//   - Stage 1: Compute the smallest positive integer not used by any vertex.
//   - Stage 2: Append a vertex with Key=Infinity, Parent=NoVertex.
//
// Behavior highlights:
//   - IDs freed by RemoveVertex are reused, smallest gap first.
//
// Complexity:
//   - Time O(V²) worst case for the gap scan, Space O(1) amortized.
func (g *Graph) AddVertex() int {
	return g.AddVertexWithMetadata(nil)
}

// AddVertexWithMetadata is AddVertex with caller-supplied presentation data.
// A nil md is replaced by an empty map.
func (g *Graph) AddVertexWithMetadata(md map[string]interface{}) int {
	if md == nil {
		md = make(map[string]interface{})
	}
	id := g.nextVertexID()
	g.vertices = append(g.vertices, &Vertex{
		ID:       id,
		Metadata: md,
		Key:      Infinity,
		Parent:   NoVertex,
	})

	return id
}

// nextVertexID scans for the smallest ID >= 1 that no vertex holds.
// Each candidate restarts the scan, so the cost is quadratic in V; graphs
// here are drawn by hand and stay small.
func (g *Graph) nextVertexID() int {
	id := 1
	for {
		if _, ok := g.FindVertexIndex(id); !ok {
			return id
		}
		id++
	}
}

// RemoveVertex deletes the vertex and every edge incident to it.
//
// Errors:
//   - ErrUnknownVertex: if id is not present.
//
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(id int) error {
	idx, ok := g.FindVertexIndex(id)
	if !ok {
		return ErrUnknownVertex
	}

	// Cascade: drop incident edges first, preserving the order of the rest.
	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.V1 == id || e.V2 == id {
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(g.edges); i++ {
		g.edges[i] = nil
	}
	g.edges = kept

	copy(g.vertices[idx:], g.vertices[idx+1:])
	g.vertices[len(g.vertices)-1] = nil
	g.vertices = g.vertices[:len(g.vertices)-1]

	return nil
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id int) bool {
	_, ok := g.FindVertexIndex(id)
	return ok
}

// FindVertexIndex returns the position of the vertex in insertion order.
// Complexity: O(V).
func (g *Graph) FindVertexIndex(id int) (int, bool) {
	for i, v := range g.vertices {
		if v.ID == id {
			return i, true
		}
	}

	return -1, false
}

// Vertex returns the live vertex record for id.
//
// The pointer aliases graph storage; the MST engine uses it to update Key
// and Parent. Presentation code should prefer AllVertices.
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	idx, ok := g.FindVertexIndex(id)
	if !ok {
		return nil, false
	}

	return g.vertices[idx], true
}

// SetStartVertex designates id as the start vertex, clearing the flag on
// every other vertex first.
//
// Errors:
//   - ErrUnknownVertex: if id is not present (flags are left untouched).
func (g *Graph) SetStartVertex(id int) error {
	idx, ok := g.FindVertexIndex(id)
	if !ok {
		return ErrUnknownVertex
	}
	for _, v := range g.vertices {
		v.IsStart = false
	}
	g.vertices[idx].IsStart = true

	return nil
}

// FindStartVertex returns the ID of the designated start vertex, if any.
func (g *Graph) FindStartVertex() (int, bool) {
	for _, v := range g.vertices {
		if v.IsStart {
			return v.ID, true
		}
	}

	return NoVertex, false
}

// MaxVertexID returns the largest vertex ID, or -1 for an empty graph.
func (g *Graph) MaxVertexID() int {
	maxID := -1
	for _, v := range g.vertices {
		if v.ID > maxID {
			maxID = v.ID
		}
	}

	return maxID
}

// VertexIDs returns all vertex IDs in insertion order.
func (g *Graph) VertexIDs() []int {
	ids := make([]int, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.ID
	}

	return ids
}

// AllVertices returns value copies of all vertices in insertion order.
// Metadata maps are shared with the graph.
func (g *Graph) AllVertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = *v
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// ResetKeys sets every vertex to Key=Infinity, Parent=NoVertex.
// The MST engine calls it at the start of each run.
func (g *Graph) ResetKeys() {
	for _, v := range g.vertices {
		v.Key = Infinity
		v.Parent = NoVertex
	}
}

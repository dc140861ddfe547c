// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/FindEdge/HasEdge/AllEdges/Neighbors.
// Determinism:
//   - AllEdges() returns edges in insertion order.
//   - FindEdge() re-orients a reversed match in place (see below).

package core

// AddEdge connects id1 and id2 with the given weight.
//
// Steps:
//  1. Both endpoints must exist (ErrUnknownVertex).
//  2. id1 == id2 is a self-loop (ErrInvalidEdge).
//  3. An existing edge over the same unordered pair is a duplicate (ErrInvalidEdge).
//  4. Append Edge{V1: id1, V2: id2, Weight: weight}.
//
// Any int64 weight is accepted. A zero weight is stored but reads as "no
// edge" in the adjacency matrix the MST engine uses.
//
// Complexity: O(V + E).
func (g *Graph) AddEdge(id1, id2 int, weight int64) error {
	if !g.HasVertex(id1) || !g.HasVertex(id2) {
		return ErrUnknownVertex
	}
	if id1 == id2 {
		return ErrInvalidEdge
	}
	if g.indexOfEdge(id1, id2) >= 0 {
		return ErrInvalidEdge
	}
	g.edges = append(g.edges, &Edge{V1: id1, V2: id2, Weight: weight})

	return nil
}

// RemoveEdge deletes the edge between id1 and id2 (either orientation).
//
// Errors:
//   - ErrUnknownVertex: if either endpoint is not present.
//   - ErrEdgeNotFound: if the endpoints are not connected.
func (g *Graph) RemoveEdge(id1, id2 int) error {
	if !g.HasVertex(id1) || !g.HasVertex(id2) {
		return ErrUnknownVertex
	}
	i := g.indexOfEdge(id1, id2)
	if i < 0 {
		return ErrEdgeNotFound
	}
	copy(g.edges[i:], g.edges[i+1:])
	g.edges[len(g.edges)-1] = nil
	g.edges = g.edges[:len(g.edges)-1]

	return nil
}

// FindEdge returns the stored edge joining id1 and id2, in either orientation.
//
// When the edge is stored as (id2, id1) its endpoints are swapped in place
// before returning, so that afterwards the stored edge reads (id1, id2) and
// an exact-order comparison against the caller's orientation succeeds. The
// MST engine relies on this: the edge it reports for a vertex always has
// that vertex as V1.
//
// The returned pointer aliases graph storage.
//
// Complexity: O(E).
func (g *Graph) FindEdge(id1, id2 int) (*Edge, bool) {
	for _, e := range g.edges {
		if e.V1 == id1 && e.V2 == id2 {
			return e, true
		}
		if e.V1 == id2 && e.V2 == id1 {
			e.V1, e.V2 = e.V2, e.V1
			return e, true
		}
	}

	return nil, false
}

// HasEdge reports whether id1 and id2 are connected. Unlike FindEdge it
// never re-orients storage.
func (g *Graph) HasEdge(id1, id2 int) bool {
	return g.indexOfEdge(id1, id2) >= 0
}

// indexOfEdge returns the slice index of the edge over {id1, id2}, or -1.
func (g *Graph) indexOfEdge(id1, id2 int) int {
	for i, e := range g.edges {
		if e.Connects(id1, id2) {
			return i
		}
	}

	return -1
}

// AllEdges returns value copies of all edges in insertion order.
func (g *Graph) AllEdges() []Edge {
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns the IDs adjacent to id, in edge insertion order.
//
// Errors:
//   - ErrUnknownVertex: if id is not present.
func (g *Graph) Neighbors(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrUnknownVertex
	}
	var out []int
	for _, e := range g.edges {
		if other := e.Other(id); other != NoVertex {
			out = append(out, other)
		}
	}

	return out, nil
}

// Package core defines the Graph, Vertex and Edge types used by the Prim
// visualizer, together with the sentinel errors of graph mutation.
//
// Vertices live in an arena (a dense slice) and every cross-reference,
// edge endpoints and the Prim parent link alike, is an integer vertex ID
// rather than a pointer.
//
// Errors:
//
//	ErrUnknownVertex - an operation referenced a vertex ID that is not present.
//	ErrInvalidEdge   - AddEdge was asked for a self-loop or an already connected pair.
//	ErrEdgeNotFound  - RemoveEdge found no edge between the given endpoints.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrUnknownVertex indicates an operation referenced a non-existent vertex.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrInvalidEdge indicates a self-loop or a duplicate (same unordered pair) edge.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

const (
	// NoVertex is the zero ID. Generated IDs start at 1, so NoVertex never
	// names a real vertex and doubles as "no parent".
	NoVertex = 0

	// Infinity is the Key of a vertex no tree edge reaches yet.
	Infinity int64 = math.MaxInt64
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. Key and Parent are
// scratch state owned by the MST engine and are reset on every run.
type Vertex struct {
	// ID is the unique identifier for this Vertex (>= 1).
	ID int

	// Metadata stores arbitrary presentation data (position, label, ...).
	// The graph never reads it. It is not deep-copied by Clone.
	Metadata map[string]interface{}

	// Key is the lightest known weight connecting this vertex to the tree.
	Key int64

	// Parent is the ID of the tree vertex the Key edge leads to, or NoVertex.
	Parent int

	// IsStart marks the designated start vertex; at most one per graph.
	IsStart bool
}

// Edge represents an undirected weighted connection between V1 and V2.
//
// (V1, V2) and (V2, V1) denote the same edge; the stored order is only
// meaningful as the orientation of the last FindEdge lookup.
type Edge struct {
	// V1 is the first endpoint ID.
	V1 int

	// V2 is the second endpoint ID.
	V2 int

	// Weight is the cost of the edge.
	Weight int64
}

// Connects reports whether e joins a and b, in either orientation.
func (e Edge) Connects(a, b int) bool {
	return (e.V1 == a && e.V2 == b) || (e.V1 == b && e.V2 == a)
}

// Other returns the endpoint of e opposite to id, or NoVertex if id is not an endpoint.
func (e Edge) Other(id int) int {
	switch id {
	case e.V1:
		return e.V2
	case e.V2:
		return e.V1
	default:
		return NoVertex
	}
}

// Graph is the in-memory weighted undirected graph.
//
// vertices is kept in insertion order; that order seeds the MST heap and
// therefore decides tie-breaking between equal keys. edges is kept in
// insertion order as well.
//
// Graph is not safe for concurrent use. Callers that drive it from more
// than one goroutine must serialize access themselves.
type Graph struct {
	vertices []*Vertex
	edges    []*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices: make([]*Vertex, 0),
		edges:    make([]*Edge, 0),
	}
}

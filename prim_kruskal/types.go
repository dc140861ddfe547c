// Package prim_kruskal defines configuration options, sentinel errors and
// the state/role vocabulary of MST computation.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/primstep/core"
)

// ErrInvalidGraph indicates that no MST method could be applied to the input.
// Returned by Compute for an unknown method name.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph or method")

// ErrNilGraph indicates a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrNoStartVertex indicates that the requested start vertex does not exist,
// or that no vertex is flagged as start.
var ErrNoStartVertex = errors.New("prim_kruskal: no start vertex")

// ErrInvalidState indicates Step was called before Initialize or after the
// run finished.
var ErrInvalidState = errors.New("prim_kruskal: invalid stepper state")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It applies when |V| > 1 but MST is impossible.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// State is the lifecycle position of a Stepper.
type State uint8

const (
	// StateUninitialized: no run is loaded (new or after Reset).
	StateUninitialized State = iota
	// StateReady: Initialize succeeded, no step taken yet.
	StateReady
	// StateStepping: at least one step taken and vertices remain.
	StateStepping
	// StateFinished: every vertex has been settled.
	StateFinished
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateStepping:
		return "stepping"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Role describes how a vertex or edge takes part in the current step.
// Presentation layers map roles to colors; the engine never deals in colors.
type Role uint8

const (
	// RoleNone: not involved (outside the tree, not on the frontier).
	RoleNone Role = iota
	// RoleStart: the start vertex before it has been settled.
	RoleStart
	// RoleTree: settled vertex, or an edge of the growing tree.
	RoleTree
	// RoleFrontier: outside vertex adjacent to the tree, or an edge joining them.
	RoleFrontier
	// RoleNext: the vertex the next step will settle, or its pending tree edge.
	RoleNext
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleStart:
		return "start"
	case RoleTree:
		return "tree"
	case RoleFrontier:
		return "frontier"
	case RoleNext:
		return "next"
	default:
		return "unknown"
	}
}

// StepResult describes one extraction round of the Prim stepper.
//
// Optional edges are nil when absent; NextVertexID is core.NoVertex when
// nothing remains. Edge values are copies taken after FindEdge oriented
// them, so SettledEdge.V1 == SettledVertexID and NextEdge.V1 == NextVertexID.
type StepResult struct {
	// Step is the 1-based round number.
	Step int

	// SettledVertexID is the vertex extracted in this round.
	SettledVertexID int

	// SettledEdge is the tree edge into the settled vertex; nil for the
	// start vertex and for vertices no tree edge reaches.
	SettledEdge *core.Edge

	// NextVertexID is the vertex with the minimum key after relaxation.
	NextVertexID int

	// NextEdge is the pending tree edge of NextVertexID, if any.
	NextEdge *core.Edge

	// FrontierVertexIDs are outside vertices adjacent to the tree, ascending.
	FrontierVertexIDs []int

	// FrontierEdges join an outside vertex (V1) to a settled vertex (V2).
	FrontierEdges []core.Edge

	// OutsideVertexIDs are all vertices not yet settled, ascending.
	OutsideVertexIDs []int

	// Done is true when no vertex remains outside the tree.
	Done bool
}

// MethodPrim selects Prim's algorithm (grow from a root using the stepper).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string - one of MethodPrim or MethodKruskal.
//	Root   int    - start vertex ID for Prim; ignored when Method == MethodKruskal.
//	                core.NoVertex means "use the graph's flagged start vertex".
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm and ignore by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = core.NoVertex (ignored by Kruskal).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   core.NoVertex,
	}
}

// NewOptions applies opts over DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(graph).
//	– If opts.Method == MethodPrim:    calls Prim(graph, opts.Root), falling back
//	                                    to the flagged start vertex when Root is unset.
//	– Otherwise:                        returns ErrInvalidGraph.
//
// Returns:
//
//	[]core.Edge - slice of edges in MST (empty if graph has single vertex).
//	int64       - total weight of MST (zero if no edges).
//	error       - non-nil if computation cannot proceed.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		root := opts.Root
		if root == core.NoVertex && graph != nil {
			if id, ok := graph.FindStartVertex(); ok {
				root = id
			}
		}
		return Prim(graph, root)
	default:
		return nil, 0, ErrInvalidGraph
	}
}

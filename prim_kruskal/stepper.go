// Package prim_kruskal provides the resumable Prim engine: a state machine
// that settles exactly one vertex per Step call and reports what a
// presentation layer needs to highlight in between.
package prim_kruskal

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/primstep/core"
	"github.com/katalvlaran/primstep/matrix"
	"github.com/katalvlaran/primstep/minheap"
)

// StepperOption configures a Stepper at construction time.
type StepperOption func(*Stepper)

// WithDecreaseKey switches relaxation from a full heap rebuild to an
// O(log V) bubble-up. The resulting tree weight is the same, but ties may
// be settled in a different order, so step sequences differ from the
// default mode. Intended for large graphs where animation fidelity does
// not matter.
func WithDecreaseKey() StepperOption {
	return func(s *Stepper) { s.decreaseKey = true }
}

// Stepper runs Prim's algorithm one extraction per Step.
//
// Lifecycle: Uninitialized → Ready (Initialize) → Stepping (Step) →
// Finished (the round that empties the heap). Initialize may be called in
// any state and starts over; Reset returns to Uninitialized.
//
// While a run is loaded the Stepper writes Key/Parent on the graph's
// vertices and re-orients edges through core.Graph.FindEdge. The graph must
// not be mutated between Initialize and Finished. A Stepper is not safe
// for concurrent use.
type Stepper struct {
	decreaseKey bool

	g      *core.Graph
	adj    matrix.Adjacency
	heap   *minheap.MinHeap
	vertex map[int]*core.Vertex // ID → live vertex record of g
	state  State
	start  int

	step    int
	last    StepResult
	hasLast bool
	settled []int       // extraction order
	tree    []core.Edge // tree edges in the order they were completed
	total   int64
}

// NewStepper returns an uninitialized Stepper.
func NewStepper(opts ...StepperOption) *Stepper {
	s := &Stepper{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Initialize loads a new run on g rooted at start.
//
// Steps:
//  1. Validate: g != nil (ErrNilGraph), start exists (ErrNoStartVertex wrapping core.ErrUnknownVertex).
//  2. Reset every vertex to Key=+∞, Parent=none; set Key(start)=0.
//  3. Build the adjacency matrix from the current edge list.
//  4. Build the heap over every vertex ID in graph insertion order.
//
// Any previous run is discarded. On error the Stepper is left unchanged.
//
// Complexity: O(maxID² + V + E).
func (s *Stepper) Initialize(g *core.Graph, start int) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(start) {
		return fmt.Errorf("%w: vertex %d: %w", ErrNoStartVertex, start, core.ErrUnknownVertex)
	}
	adj, err := matrix.BuildAdjacency(g)
	if err != nil {
		return err
	}

	s.clear()
	g.ResetKeys()
	ids := g.VertexIDs()
	s.vertex = make(map[int]*core.Vertex, len(ids))
	for _, id := range ids {
		s.vertex[id], _ = g.Vertex(id)
	}
	s.vertex[start].Key = 0

	s.g = g
	s.adj = adj
	s.start = start
	s.heap = minheap.New(ids, s.keyOf)
	s.state = StateReady

	return nil
}

// InitializeFromStart is Initialize rooted at the graph's flagged start vertex.
// Returns ErrNoStartVertex if no vertex is flagged.
func (s *Stepper) InitializeFromStart(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	start, ok := g.FindStartVertex()
	if !ok {
		return ErrNoStartVertex
	}

	return s.Initialize(g, start)
}

// keyOf is the heap's KeyFunc over the loaded graph.
func (s *Stepper) keyOf(id int) int64 {
	if v, ok := s.vertex[id]; ok {
		return v.Key
	}

	return core.Infinity
}

// Step performs exactly one MST extraction round.
//
// Steps:
//  1. Extract the minimum-key vertex u. If u has a parent, (u, parent) is the
//     tree edge just completed.
//  2. Relax: for every w with adj[u][w] ≠ 0 still in the heap and
//     adj[u][w] < key(w), set parent(w)=u, key(w)=adj[u][w] and rebuild the heap.
//  3. Collect the frontier (outside vertices joined to a settled one).
//  4. Peek the next minimum and its pending tree edge.
//  5. Done when the heap is empty; the Stepper then moves to Finished.
//
// A vertex that no edge reaches is settled with Key=+∞ and no edge; that is
// a normal result, not an error.
//
// Errors:
//   - ErrInvalidState: before Initialize, after Reset, or once Finished.
//
// Complexity: O(V² + V·E) with the default full rebuild.
func (s *Stepper) Step() (StepResult, error) {
	if s.state != StateReady && s.state != StateStepping {
		return StepResult{}, fmt.Errorf("%w: step in state %s", ErrInvalidState, s.state)
	}

	u, ok := s.heap.ExtractMin()
	if !ok {
		// Nothing left to settle: report the last round again as final.
		s.state = StateFinished
		res := s.last
		res.Done = true
		s.last, s.hasLast = res, true

		return res, nil
	}

	s.step++
	s.settled = append(s.settled, u)
	res := StepResult{Step: s.step, SettledVertexID: u, NextVertexID: core.NoVertex}

	if p := s.vertex[u].Parent; p != core.NoVertex {
		if e, found := s.g.FindEdge(u, p); found {
			cp := *e
			res.SettledEdge = &cp
			s.tree = append(s.tree, cp)
			s.total += cp.Weight
		}
	}

	s.relax(u)

	res.FrontierVertexIDs, res.FrontierEdges = s.frontier()
	res.OutsideVertexIDs = s.heap.Active()
	sort.Ints(res.OutsideVertexIDs)

	if next, found := s.heap.Peek(); found {
		res.NextVertexID = next
		if p := s.vertex[next].Parent; p != core.NoVertex {
			if e, ok := s.g.FindEdge(next, p); ok {
				cp := *e
				res.NextEdge = &cp
			}
		}
	}

	res.Done = s.heap.IsEmpty()
	if res.Done {
		s.state = StateFinished
	} else {
		s.state = StateStepping
	}
	s.last, s.hasLast = res, true

	return res, nil
}

// relax lowers the key of every outside neighbor of u reachable by a lighter edge.
func (s *Stepper) relax(u int) {
	row := s.adj[u]
	for w, weight := range row {
		if weight == 0 {
			continue
		}
		wv, ok := s.vertex[w]
		if !ok || !s.heap.Contains(w) || weight >= wv.Key {
			continue
		}
		wv.Parent = u
		wv.Key = weight
		if s.decreaseKey {
			s.heap.DecreaseKey(w)
		} else {
			s.heap.BuildMinHeap()
		}
	}
}

// frontier pairs every outside vertex with every settled vertex, in heap
// order then extraction-buffer order, and keeps the pairs joined by an
// edge. Edges are looked up outside-first, so they come back oriented
// (outside, settled).
func (s *Stepper) frontier() ([]int, []core.Edge) {
	outside := s.heap.Active()
	settled := s.heap.Extracted()

	seen := make(map[int]struct{})
	var edges []core.Edge
	for _, o := range outside {
		for _, in := range settled {
			if e, ok := s.g.FindEdge(o, in); ok {
				edges = append(edges, *e)
				seen[o] = struct{}{}
			}
		}
	}
	ids := maps.Keys(seen)
	sort.Ints(ids)

	return ids, edges
}

// Reset discards the loaded run and returns to Uninitialized. Vertex
// Key/Parent values on the graph are left as they are until the next
// Initialize.
func (s *Stepper) Reset() {
	s.clear()
}

func (s *Stepper) clear() {
	s.g = nil
	s.adj = nil
	s.heap = nil
	s.vertex = nil
	s.state = StateUninitialized
	s.start = core.NoVertex
	s.step = 0
	s.last = StepResult{}
	s.hasLast = false
	s.settled = nil
	s.tree = nil
	s.total = 0
}

// State returns the current lifecycle state.
func (s *Stepper) State() State { return s.state }

// Start returns the root of the loaded run, or core.NoVertex.
func (s *Stepper) Start() int { return s.start }

// Last returns the most recent StepResult, if a step has been taken.
func (s *Stepper) Last() (StepResult, bool) { return s.last, s.hasLast }

// Settled returns the settled vertex IDs in extraction order.
func (s *Stepper) Settled() []int {
	out := make([]int, len(s.settled))
	copy(out, s.settled)

	return out
}

// Tree returns the tree edges completed so far, in completion order.
func (s *Stepper) Tree() []core.Edge {
	out := make([]core.Edge, len(s.tree))
	copy(out, s.tree)

	return out
}

// TotalWeight returns the sum of the tree edge weights completed so far.
func (s *Stepper) TotalWeight() int64 { return s.total }

// VertexRole reports the role of vertex id after the latest step.
//
// Precedence: next > tree > frontier > start > none.
func (s *Stepper) VertexRole(id int) Role {
	if s.state == StateUninitialized {
		return RoleNone
	}
	if s.hasLast && s.last.NextVertexID == id {
		return RoleNext
	}
	if _, loaded := s.vertex[id]; loaded && !s.heap.Contains(id) {
		return RoleTree
	}
	if s.hasLast && containsInt(s.last.FrontierVertexIDs, id) {
		return RoleFrontier
	}
	if id == s.start {
		return RoleStart
	}

	return RoleNone
}

// EdgeRole reports the role of the edge {id1, id2} after the latest step.
//
// Precedence: tree > next > frontier > none.
func (s *Stepper) EdgeRole(id1, id2 int) Role {
	for _, e := range s.tree {
		if e.Connects(id1, id2) {
			return RoleTree
		}
	}
	if !s.hasLast {
		return RoleNone
	}
	if s.last.NextEdge != nil && s.last.NextEdge.Connects(id1, id2) {
		return RoleNext
	}
	for _, e := range s.last.FrontierEdges {
		if e.Connects(id1, id2) {
			return RoleFrontier
		}
	}

	return RoleNone
}

func containsInt(sorted []int, x int) bool {
	i := sort.SearchInts(sorted, x)
	return i < len(sorted) && sorted[i] == x
}

// Trace initializes a fresh Stepper on g at start and steps it to
// completion, returning every StepResult in order.
func Trace(g *core.Graph, start int, opts ...StepperOption) ([]StepResult, error) {
	s := NewStepper(opts...)
	if err := s.Initialize(g, start); err != nil {
		return nil, err
	}

	var out []StepResult
	for {
		res, err := s.Step()
		if err != nil {
			return out, err
		}
		out = append(out, res)
		if res.Done {
			return out, nil
		}
	}
}

package matrix

import (
	"fmt"

	"github.com/katalvlaran/primstep/core"
)

// Adjacency is a symmetric weight matrix indexed by vertex ID.
type Adjacency [][]int64

// BuildAdjacency constructs the adjacency matrix of g.
// Stage 1 (Validate): ensure g is non-nil.
// Stage 2 (Prepare): allocate a (MaxVertexID+1)² zero matrix.
// Stage 3 (Execute): write every edge weight at [V1][V2] and [V2][V1].
// An empty graph yields a 0×0 matrix.
// Complexity: O(maxID² + E) time and O(maxID²) memory.
func BuildAdjacency(g *core.Graph) (Adjacency, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.MaxVertexID() + 1
	m := make(Adjacency, n)
	cells := make([]int64, n*n) // one backing array for all rows
	for i := range m {
		m[i] = cells[i*n : (i+1)*n : (i+1)*n]
	}

	for _, e := range g.AllEdges() {
		m[e.V1][e.V2] = e.Weight
		m[e.V2][e.V1] = e.Weight
	}

	return m, nil
}

// Size returns the side length of the matrix.
func (m Adjacency) Size() int { return len(m) }

// Weight returns the entry at [i][j], or ErrOutOfRange.
func (m Adjacency) Weight(i, j int) (int64, error) {
	if i < 0 || j < 0 || i >= len(m) || j >= len(m) {
		return 0, fmt.Errorf("weight(%d,%d) on %dx%d: %w", i, j, len(m), len(m), ErrOutOfRange)
	}

	return m[i][j], nil
}

// Neighbors returns the IDs j with a non-zero entry in row i, ascending.
// An out-of-range row has no neighbors.
func (m Adjacency) Neighbors(i int) []int {
	if i < 0 || i >= len(m) {
		return nil
	}
	var out []int
	for j, w := range m[i] {
		if w != 0 {
			out = append(out, j)
		}
	}

	return out
}

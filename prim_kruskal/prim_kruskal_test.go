package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/primstep/core"
	"github.com/katalvlaran/primstep/prim_kruskal"
)

// buildTriangle constructs the undirected, weighted triangle
//
//	1—2 (weight 5), 2—3 (weight 1), 1—3 (weight 10).
//
// Its MST is {1—2, 2—3} with total weight 6.
func buildTriangle(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	require.NoError(t, g.AddEdge(1, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(1, 3, 10))

	return g
}

// buildRandomGraph creates n vertices and up to extra random edges with
// weights in [1..20]. When connected is set, a chain 1—2—...—n is added
// first so the graph always spans.
func buildRandomGraph(r *rand.Rand, n, extra int, connected bool) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	if connected {
		for i := 2; i <= n; i++ {
			_ = g.AddEdge(i-1, i, int64(1+r.Intn(20)))
		}
	}
	for i := 0; i < extra; i++ {
		u, v := 1+r.Intn(n), 1+r.Intn(n)
		// Self-loops and duplicates are rejected by core; skipping them is fine.
		_ = g.AddEdge(u, v, int64(1+r.Intn(20)))
	}

	return g
}

// countComponents returns the number of connected components of g.
func countComponents(g *core.Graph) int {
	ids := g.VertexIDs()
	seen := make(map[int]bool, len(ids))
	components := 0
	for _, id := range ids {
		if seen[id] {
			continue
		}
		components++
		stack := []int{id}
		seen[id] = true
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			nbrs, _ := g.Neighbors(u)
			for _, w := range nbrs {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}
	}

	return components
}

// assertAcyclic fails if edges contain a cycle.
func assertAcyclic(t *testing.T, edges []core.Edge) {
	t.Helper()
	parent := map[int]int{}
	var find func(int) int
	find = func(u int) int {
		if _, ok := parent[u]; !ok {
			parent[u] = u
		}
		if parent[u] != u {
			parent[u] = find(parent[u])
		}
		return parent[u]
	}
	for _, e := range edges {
		a, b := find(e.V1), find(e.V2)
		if !assert.NotEqual(t, a, b, "edge %d-%d closes a cycle", e.V1, e.V2) {
			return
		}
		parent[a] = b
	}
}

// TestStepper_TriangleWalkthrough checks every StepResult on the triangle from vertex 1.
func TestStepper_TriangleWalkthrough(t *testing.T) {
	g := buildTriangle(t)
	s := prim_kruskal.NewStepper()
	assert.Equal(t, prim_kruskal.StateUninitialized, s.State())

	require.NoError(t, s.Initialize(g, 1))
	assert.Equal(t, prim_kruskal.StateReady, s.State())
	assert.Equal(t, 1, s.Start())

	// Step 1: start vertex settles without an edge; 2 is next via 2—1.
	r1, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, r1.Step)
	assert.Equal(t, 1, r1.SettledVertexID)
	assert.Nil(t, r1.SettledEdge)
	assert.Equal(t, 2, r1.NextVertexID)
	require.NotNil(t, r1.NextEdge)
	assert.Equal(t, core.Edge{V1: 2, V2: 1, Weight: 5}, *r1.NextEdge)
	assert.Equal(t, []int{2, 3}, r1.FrontierVertexIDs)
	assert.Equal(t, []core.Edge{{V1: 2, V2: 1, Weight: 5}, {V1: 3, V2: 1, Weight: 10}}, r1.FrontierEdges)
	assert.Equal(t, []int{2, 3}, r1.OutsideVertexIDs)
	assert.False(t, r1.Done)
	assert.Equal(t, prim_kruskal.StateStepping, s.State())

	v3, _ := g.Vertex(3)
	assert.Equal(t, int64(10), v3.Key)
	assert.Equal(t, 1, v3.Parent)

	// Step 2: 2 settles via 2—1; relaxing 2—3 lowers key(3) to 1.
	r2, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, r2.SettledVertexID)
	require.NotNil(t, r2.SettledEdge)
	assert.Equal(t, core.Edge{V1: 2, V2: 1, Weight: 5}, *r2.SettledEdge)
	assert.Equal(t, int64(1), v3.Key)
	assert.Equal(t, 2, v3.Parent)
	assert.Equal(t, 3, r2.NextVertexID)
	require.NotNil(t, r2.NextEdge)
	assert.Equal(t, core.Edge{V1: 3, V2: 2, Weight: 1}, *r2.NextEdge)
	assert.Equal(t, []int{3}, r2.FrontierVertexIDs)
	assert.Equal(t, []core.Edge{{V1: 3, V2: 2, Weight: 1}, {V1: 3, V2: 1, Weight: 10}}, r2.FrontierEdges)
	assert.False(t, r2.Done)

	// Step 3: 3 settles via 3—2 and the run is done.
	r3, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 3, r3.SettledVertexID)
	require.NotNil(t, r3.SettledEdge)
	assert.Equal(t, core.Edge{V1: 3, V2: 2, Weight: 1}, *r3.SettledEdge)
	assert.Equal(t, core.NoVertex, r3.NextVertexID)
	assert.Nil(t, r3.NextEdge)
	assert.Empty(t, r3.FrontierVertexIDs)
	assert.Empty(t, r3.OutsideVertexIDs)
	assert.True(t, r3.Done)
	assert.Equal(t, prim_kruskal.StateFinished, s.State())

	assert.Equal(t, []int{1, 2, 3}, s.Settled())
	assert.Equal(t, int64(6), s.TotalWeight())
	assert.Len(t, s.Tree(), 2)

	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, r3, last)
}

// TestStepper_StateErrors verifies ErrInvalidState outside Ready/Stepping.
func TestStepper_StateErrors(t *testing.T) {
	s := prim_kruskal.NewStepper()
	_, err := s.Step()
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidState)

	g := buildTriangle(t)
	require.NoError(t, s.Initialize(g, 1))
	for {
		res, err := s.Step()
		require.NoError(t, err)
		if res.Done {
			break
		}
	}
	_, err = s.Step()
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidState)

	// Re-Initialize from Finished starts over.
	require.NoError(t, s.Initialize(g, 3))
	assert.Equal(t, prim_kruskal.StateReady, s.State())

	s.Reset()
	assert.Equal(t, prim_kruskal.StateUninitialized, s.State())
	assert.Equal(t, core.NoVertex, s.Start())
	_, ok := s.Last()
	assert.False(t, ok)
	_, err = s.Step()
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidState)
}

// TestStepper_InitializeErrors covers nil graphs and missing start vertices.
func TestStepper_InitializeErrors(t *testing.T) {
	s := prim_kruskal.NewStepper()
	assert.ErrorIs(t, s.Initialize(nil, 1), prim_kruskal.ErrNilGraph)
	assert.ErrorIs(t, s.InitializeFromStart(nil), prim_kruskal.ErrNilGraph)

	g := buildTriangle(t)
	err := s.Initialize(g, 99)
	assert.ErrorIs(t, err, prim_kruskal.ErrNoStartVertex)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Equal(t, prim_kruskal.StateUninitialized, s.State())

	assert.ErrorIs(t, s.InitializeFromStart(g), prim_kruskal.ErrNoStartVertex)

	require.NoError(t, g.SetStartVertex(2))
	require.NoError(t, s.InitializeFromStart(g))
	assert.Equal(t, 2, s.Start())

	res, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, res.SettledVertexID)
}

// TestStepper_FailedInitializeKeepsRun verifies a bad Initialize leaves a loaded run intact.
func TestStepper_FailedInitializeKeepsRun(t *testing.T) {
	g := buildTriangle(t)
	s := prim_kruskal.NewStepper()
	require.NoError(t, s.Initialize(g, 1))
	_, err := s.Step()
	require.NoError(t, err)

	assert.Error(t, s.Initialize(g, 42))
	assert.Equal(t, prim_kruskal.StateStepping, s.State())
	res, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 2, res.SettledVertexID)
}

// TestStepper_SingleVertex: one round, no edges, done.
func TestStepper_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	id := g.AddVertex()

	trace, err := prim_kruskal.Trace(g, id)
	require.NoError(t, err)
	require.Len(t, trace, 1)
	assert.Equal(t, id, trace[0].SettledVertexID)
	assert.Nil(t, trace[0].SettledEdge)
	assert.True(t, trace[0].Done)
}

// TestStepper_DisconnectedForest checks that unreachable vertices settle with
// an infinite key and no edge instead of failing.
func TestStepper_DisconnectedForest(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	require.NoError(t, g.AddEdge(1, 2, 4))

	trace, err := prim_kruskal.Trace(g, 1)
	require.NoError(t, err)
	require.Len(t, trace, 3)

	assert.Equal(t, 2, trace[0].NextVertexID)
	assert.Equal(t, 3, trace[1].NextVertexID)
	assert.Nil(t, trace[1].NextEdge)
	assert.Empty(t, trace[1].FrontierVertexIDs)

	assert.Equal(t, 3, trace[2].SettledVertexID)
	assert.Nil(t, trace[2].SettledEdge)
	assert.True(t, trace[2].Done)

	v3, _ := g.Vertex(3)
	assert.Equal(t, core.Infinity, v3.Key)
	assert.Equal(t, core.NoVertex, v3.Parent)

	_, _, err = prim_kruskal.Prim(g, 1)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// TestStepper_ResetReproducesTrace ensures Reset+Initialize yields the same sequence.
func TestStepper_ResetReproducesTrace(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	g := buildRandomGraph(r, 8, 14, true)

	first, err := prim_kruskal.Trace(g, 1)
	require.NoError(t, err)

	s := prim_kruskal.NewStepper()
	require.NoError(t, s.Initialize(g, 1))
	_, err = s.Step()
	require.NoError(t, err)
	s.Reset()
	require.NoError(t, s.Initialize(g, 1))

	var second []prim_kruskal.StepResult
	for {
		res, err := s.Step()
		require.NoError(t, err)
		second = append(second, res)
		if res.Done {
			break
		}
	}
	assert.Equal(t, first, second)
}

// TestStepper_Roles checks vertex and edge roles as the triangle run progresses.
func TestStepper_Roles(t *testing.T) {
	g := buildTriangle(t)
	s := prim_kruskal.NewStepper()
	assert.Equal(t, prim_kruskal.RoleNone, s.VertexRole(1))

	require.NoError(t, s.Initialize(g, 1))
	assert.Equal(t, prim_kruskal.RoleStart, s.VertexRole(1))
	assert.Equal(t, prim_kruskal.RoleNone, s.VertexRole(2))
	assert.Equal(t, prim_kruskal.RoleNone, s.EdgeRole(1, 2))

	_, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.RoleTree, s.VertexRole(1))
	assert.Equal(t, prim_kruskal.RoleNext, s.VertexRole(2))
	assert.Equal(t, prim_kruskal.RoleFrontier, s.VertexRole(3))
	assert.Equal(t, prim_kruskal.RoleNext, s.EdgeRole(1, 2))
	assert.Equal(t, prim_kruskal.RoleFrontier, s.EdgeRole(3, 1))
	assert.Equal(t, prim_kruskal.RoleNone, s.EdgeRole(2, 3))

	_, err = s.Step()
	require.NoError(t, err)
	assert.Equal(t, prim_kruskal.RoleTree, s.EdgeRole(2, 1))
	assert.Equal(t, prim_kruskal.RoleNext, s.EdgeRole(2, 3))
	assert.Equal(t, prim_kruskal.RoleFrontier, s.EdgeRole(1, 3))
	assert.Equal(t, prim_kruskal.RoleNext, s.VertexRole(3))

	_, err = s.Step()
	require.NoError(t, err)
	for _, id := range []int{1, 2, 3} {
		assert.Equal(t, prim_kruskal.RoleTree, s.VertexRole(id))
	}
	assert.Equal(t, prim_kruskal.RoleNone, s.EdgeRole(1, 3))

	assert.Equal(t, "frontier", prim_kruskal.RoleFrontier.String())
	assert.Equal(t, "finished", s.State().String())
}

// TestStepper_ForestProperties checks structural properties on random,
// possibly disconnected graphs, in both relaxation modes.
func TestStepper_ForestProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iter := 0; iter < 50; iter++ {
		n := 1 + r.Intn(10)
		g := buildRandomGraph(r, n, r.Intn(2*n), false)
		components := countComponents(g)

		for _, opts := range [][]prim_kruskal.StepperOption{nil, {prim_kruskal.WithDecreaseKey()}} {
			s := prim_kruskal.NewStepper(opts...)
			require.NoError(t, s.Initialize(g, 1))

			steps := 0
			for {
				res, err := s.Step()
				require.NoError(t, err)
				steps++
				// Every vertex is either settled or outside.
				assert.Equal(t, n, steps+len(res.OutsideVertexIDs))
				if res.Done {
					break
				}
			}
			assert.Equal(t, n, steps)
			assert.ElementsMatch(t, g.VertexIDs(), s.Settled())
			assert.Len(t, s.Tree(), n-components)
			assertAcyclic(t, s.Tree())
		}
	}
}

// TestPrim_MatchesKruskal cross-validates tree weights on random connected graphs.
func TestPrim_MatchesKruskal(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iter := 0; iter < 100; iter++ {
		n := 1 + r.Intn(10)
		g := buildRandomGraph(r, n, r.Intn(3*n), true)

		_, kw, err := prim_kruskal.Kruskal(g)
		require.NoError(t, err)

		pe, pw, err := prim_kruskal.Prim(g, 1+r.Intn(n))
		require.NoError(t, err)
		assert.Len(t, pe, n-1)
		assert.Equal(t, kw, pw)

		_, fw, err := prim_kruskal.Prim(g, 1, prim_kruskal.WithDecreaseKey())
		require.NoError(t, err)
		assert.Equal(t, kw, fw)
	}
}

// TestValidation_EmptyOrNil verifies error returns on degenerate input.
func TestValidation_EmptyOrNil(t *testing.T) {
	g := core.NewGraph()
	_, _, err := prim_kruskal.Prim(g, 1)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)

	_, _, err = prim_kruskal.Prim(nil, 1)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)
	_, _, err = prim_kruskal.Kruskal(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, _, err = prim_kruskal.Prim(buildTriangle(t), 7)
	assert.ErrorIs(t, err, prim_kruskal.ErrNoStartVertex)
}

// TestKruskal_Triangle checks edge order and that the graph is left alone.
func TestKruskal_Triangle(t *testing.T) {
	g := buildTriangle(t)
	before := g.AllEdges()

	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Equal(t, []core.Edge{{V1: 2, V2: 3, Weight: 1}, {V1: 1, V2: 2, Weight: 5}}, edges)
	assert.Equal(t, before, g.AllEdges())
}

// TestCompute dispatches on method and falls back to the flagged start.
func TestCompute(t *testing.T) {
	g := buildTriangle(t)

	_, total, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	opts := prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(3))
	assert.Equal(t, 3, opts.Root)
	edges, total, err := prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, edges, 2)

	opts = prim_kruskal.NewOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim))
	_, _, err = prim_kruskal.Compute(g, opts)
	assert.ErrorIs(t, err, prim_kruskal.ErrNoStartVertex)

	require.NoError(t, g.SetStartVertex(2))
	_, total, err = prim_kruskal.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.NewOptions(prim_kruskal.WithMethod("boruvka")))
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
}

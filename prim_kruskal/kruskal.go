// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It is the reference the stepwise Prim engine is cross-checked against.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/primstep/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of g.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrNilGraph      : if g is nil.
//   - ErrDisconnected  : if |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Retrieve vertex IDs; if none → ErrDisconnected. If exactly one → empty MST.
//  2. Collect all edges (core forbids self-loops, so none are skipped).
//  3. Sort edges by ascending Weight (stable, so insertion order breaks ties).
//  4. Initialize DSU maps parent[] and rank[] for each vertex.
//  5. For each edge (u,v) with find(u) != find(v): union and include it.
//  6. Stop at |V|-1 edges; fewer after the loop → ErrDisconnected.
//
// Unlike Prim, Kruskal never mutates g.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, int64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}

	vertices := g.VertexIDs()
	if len(vertices) == 0 {
		return nil, 0, ErrDisconnected
	}
	if len(vertices) == 1 {
		return []core.Edge{}, 0, nil
	}

	edges := g.AllEdges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, id := range vertices {
		parent[id] = id
		rank[id] = 0
	}

	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	// union merges two roots by rank; reports false if already joined.
	union := func(u, v int) bool {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return false
		}
		switch {
		case rank[rootU] < rank[rootV]:
			parent[rootU] = rootV
		case rank[rootU] > rank[rootV]:
			parent[rootV] = rootU
		default:
			parent[rootV] = rootU
			rank[rootU]++
		}

		return true
	}

	var (
		mst         []core.Edge
		totalWeight int64
		numVerts    = len(vertices)
	)
	for _, e := range edges {
		if union(e.V1, e.V2) {
			mst = append(mst, e)
			totalWeight += e.Weight
			if len(mst) == numVerts-1 {
				break
			}
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// Package primstep is a steppable Minimum Spanning Tree engine: build a
// weighted undirected graph, pick a start vertex, and watch Prim's algorithm
// grow the tree one vertex at a time.
//
// What is in here:
//
//   - Graph model: integer vertex IDs with smallest-free reuse, weighted edges, a start flag
//   - Indexed min-heap keyed by vertex, with full rebuild or decrease-key
//   - Prim stepper: Initialize / Step / Reset, with per-step roles for presentation
//   - Kruskal as a one-shot reference
//   - A clock-paced player and a small CLI
//
// Under the hood, everything is organized in subpackages:
//
//	core/          - Graph, Vertex, Edge
//	minheap/       - MinHeap over vertex IDs
//	matrix/        - dense adjacency matrix built from a Graph
//	prim_kruskal/  - Stepper, Prim, Kruskal
//	builder/       - deterministic fixtures (path, cycle, star, wheel, complete)
//	animate/       - Player pacing a Stepper with a clock
//	cmd/primstep/  - command-line front end
//
// Quick ASCII example:
//
//	  1──5──2
//	   \    │
//	   10   1
//	     \  │
//	      ──3
//
// From 1 the stepper settles 1, then 2 via 1—2, then 3 via 2—3, for a total of 6.
package primstep

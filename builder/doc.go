// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// Package builder assembles deterministic weighted fixtures on *core.Graph:
// paths, cycles, stars, wheels and complete graphs.
//
// Every constructor appends fresh vertices through core.Graph.AddVertex, so
// composing several constructors in one BuildGraph call yields a forest of
// disjoint components. Vertex IDs follow core's smallest-free-ID rule; on an
// empty graph the first constructor gets 1..n in order.
//
// Weights come from a WeightFn resolved through BuilderOption:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(1, 20))},
//	    builder.Cycle(6),
//	)
//
// Weights are always ≥ 1; a zero weight would read as "no edge" in the
// adjacency matrix the Prim stepper works from.
package builder

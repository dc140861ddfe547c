package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/primstep/builder"
	"github.com/katalvlaran/primstep/core"
)

// edgeFlag is one --edge flag value.
type edgeFlag struct {
	a, b   int
	weight int64
}

// parseEdge parses "a,b,w" into an edgeFlag.
func parseEdge(s string) (edgeFlag, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return edgeFlag{}, errors.Errorf("edge %q: want a,b,weight", s)
	}

	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return edgeFlag{}, errors.Wrapf(err, "edge %q: first vertex", s)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return edgeFlag{}, errors.Wrapf(err, "edge %q: second vertex", s)
	}
	w, err := strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64)
	if err != nil {
		return edgeFlag{}, errors.Wrapf(err, "edge %q: weight", s)
	}
	if w <= 0 {
		// A zero weight reads as "no edge" in the adjacency matrix.
		return edgeFlag{}, errors.Errorf("edge %q: weight must be positive", s)
	}

	return edgeFlag{a: a, b: b, weight: w}, nil
}

// buildGraph creates the graph described by opts: a --shape fixture or
// vertices 1..N, then every --edge on top, then the start flag.
func buildGraph(opts *options) (*core.Graph, error) {
	g, err := baseGraph(opts)
	if err != nil {
		return nil, err
	}

	for _, raw := range opts.edges {
		e, err := parseEdge(raw)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(e.a, e.b, e.weight); err != nil {
			return nil, errors.Wrapf(err, "edge %q", raw)
		}
	}

	if err := g.SetStartVertex(opts.start); err != nil {
		return nil, errors.Wrapf(err, "start vertex %d", opts.start)
	}

	return g, nil
}

func baseGraph(opts *options) (*core.Graph, error) {
	if opts.shape == "" {
		if opts.vertices <= 0 {
			return nil, errors.New("at least one vertex is required (--vertices or --shape)")
		}
		g := core.NewGraph()
		for i := 0; i < opts.vertices; i++ {
			g.AddVertex()
		}

		return g, nil
	}

	ctor, err := builder.ParseShape(opts.shape)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if opts.maxWeight < 1 {
		return nil, errors.Errorf("max weight %d: must be ≥ 1", opts.maxWeight)
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(opts.seed),
		builder.WithWeightFn(builder.UniformWeightFn(1, opts.maxWeight)),
	}
	g, err := builder.BuildGraph(bopts, ctor)
	if err != nil {
		return nil, errors.Wrap(err, "shape")
	}

	return g, nil
}

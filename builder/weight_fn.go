// Package builder provides helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi] inclusive.
// Panics if lo < 1 or hi < lo.
// If rng is nil, yields lo so that unseeded builds stay deterministic.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// SequenceWeightFn cycles through values in order, one per edge.
// Panics if values is empty or holds a value < 1.
func SequenceWeightFn(values ...int64) WeightFn {
	if len(values) == 0 {
		panic("SequenceWeightFn: no values")
	}
	for _, v := range values {
		if v < 1 {
			panic(fmt.Sprintf("SequenceWeightFn: value must be ≥ 1, got %d", v))
		}
	}
	seq := append([]int64(nil), values...)
	next := 0

	return func(_ *rand.Rand) int64 {
		w := seq[next%len(seq)]
		next++

		return w
	}
}

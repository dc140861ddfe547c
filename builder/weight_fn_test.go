// Package builder_test contains unit tests for the WeightFn implementations,
// covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/primstep/builder"
)

// assertPanics fails t if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"UniformWeightFn_loZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_hiLessThanLo", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"SequenceWeightFn_empty", func() builder.WeightFn { return builder.SequenceWeightFn() }},
		{"SequenceWeightFn_zero", func() builder.WeightFn { return builder.SequenceWeightFn(3, 0) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() { tc.constructor() }, tc.name)
		})
	}

	assertPanics(t, func() { builder.WithWeightFn(nil) }, "WithWeightFn(nil)")
	assertPanics(t, func() { builder.WithRand(nil) }, "WithRand(nil)")
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	if got := builder.DefaultWeightFn(nil); got != builder.DefaultEdgeWeight {
		t.Errorf("DefaultWeightFn = %d", got)
	}
	if got := builder.ConstantWeightFn(7)(nil); got != 7 {
		t.Errorf("ConstantWeightFn(7) = %d", got)
	}

	uni := builder.UniformWeightFn(3, 9)
	if got := uni(nil); got != 3 {
		t.Errorf("UniformWeightFn nil rng = %d, want lo", got)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		if w := uni(rng); w < 3 || w > 9 {
			t.Fatalf("UniformWeightFn sample %d out of [3,9]", w)
		}
	}

	seq := builder.SequenceWeightFn(5, 1, 10)
	var got []int64
	for i := 0; i < 4; i++ {
		got = append(got, seq(nil))
	}
	want := []int64{5, 1, 10, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SequenceWeightFn = %v, want %v", got, want)
		}
	}
}

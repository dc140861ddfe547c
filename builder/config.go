// SPDX-License-Identifier: MIT
// Package: primstep/builder
//
// config.go - resolved builder configuration and functional options.

package builder

import (
	"math/rand"
)

// builderConfig is resolved once per BuildGraph call and never mutated afterwards.
type builderConfig struct {
	// rng feeds weightFn; nil unless WithSeed/WithRand is given.
	rng *rand.Rand

	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption configures a builderConfig.
// Options validate their arguments eagerly and panic on programmer error.
type BuilderOption func(*builderConfig)

// WithRand sets the RNG used by stochastic weight functions. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// nextWeight draws one weight and enforces the ≥ 1 contract.
func (c builderConfig) nextWeight(method string) (int64, error) {
	w := c.weightFn(c.rng)
	if w < 1 {
		return 0, wrapf(method, "weight", ErrInvalidWeight)
	}

	return w, nil
}

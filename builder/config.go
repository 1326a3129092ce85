// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng       = nil                 (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn     (DefaultEdgeWeight everywhere)
//   • directed  = false               (symmetric adjacency)
//   • loops     = false               (RandomSparse skips i==j)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Directed emits only (u,v); undirected also emits (v,u).
	directed bool
	// Loops allows RandomSparse to sample self-loops.
	loops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		directed: false,
		loops:    false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// weight draws the next edge weight from the configured distribution.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}

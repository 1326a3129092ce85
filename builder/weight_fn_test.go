// SPDX-License-Identifier: MIT

// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gblas/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"IntegerWeightFn_minNegative", func() builder.WeightFn { return builder.IntegerWeightFn(-1, 3) }},
		{"IntegerWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntegerWeightFn(4, 3) }},
		{"ExponentialWeightFn_zeroRate", func() builder.WeightFn { return builder.ExponentialWeightFn(0) }},
		{"ExponentialWeightFn_negativeRate", func() builder.WeightFn { return builder.ExponentialWeightFn(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnRanges checks that every distribution stays in its range and
// falls back to DefaultEdgeWeight without an RNG.
func TestWeightFnRanges(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	uniform := builder.UniformWeightFn(2, 5)
	integer := builder.IntegerWeightFn(1, 3)
	exp := builder.ExponentialWeightFn(0.5)
	for i := 0; i < 1000; i++ {
		u := uniform(rng)
		assert.GreaterOrEqual(t, u, 2.0)
		assert.Less(t, u, 5.0)

		k := integer(rng)
		assert.Contains(t, []float64{1, 2, 3}, k)

		e := exp(rng)
		assert.GreaterOrEqual(t, e, 0.0)
		assert.Equal(t, math.Round(e), e)
	}

	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))
	assert.Equal(t, 4.0, builder.ConstantWeightFn(4)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, uniform(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, integer(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, exp(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
}

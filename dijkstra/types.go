// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options for the
// heap-based reference shortest-path solver.
//
// Options:
//
//	– Source:          index of the starting vertex (required, 0 ≤ Source < n).
//	– WithReturnPath:  also return the predecessor slice.
//	– WithMaxDistance: stop exploring once the nearest unsettled vertex is farther.
//
// Errors (sentinel):
//
//	– ErrNoSource        if Source was never set.
//	– ErrNilGraph        if the graph is nil.
//	– ErrNegativeWeight  if a negative edge weight is detected.
//	– ErrBadMaxDistance  if MaxDistance < 0 (panics in the option constructor).
//	– sparse.ErrDimensionMismatch for a non-square graph.
//	– sparse.ErrIndexOutOfBounds  for Source ≥ n.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil sparse.Matrix was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// NoPredecessor marks a vertex without a predecessor in the prev slice.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex index; negative means "not set".
// ReturnPath  – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance – cap on distances to explore, compared as float64.
//
//	Must be ≥ 0. Default is +Inf (no cap).
type Options struct {
	Source      int     // index of the source vertex
	ReturnPath  bool    // whether to return the predecessor slice
	MaxDistance float64 // maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value stay absent.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic in Option constructors is acceptable for invalid arguments.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no source, no predecessor slice, no distance cap.
func DefaultOptions() Options {
	return Options{
		Source:      -1,
		ReturnPath:  false,
		MaxDistance: math.Inf(1),
	}
}

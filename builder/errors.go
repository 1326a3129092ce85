// SPDX-License-Identifier: MIT
// Package: gblas/builder
//
// errors.go - sentinel errors for builder constructors.
//
// Every message is prefixed with "builder: ..."; constructors wrap them with
// a method tag ("Grid: rows=0 < min=1: builder: parameter too small").

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the documented minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error such as a nil constructor or
// a constructor emitting an edge outside its own vertex range.
var ErrConstructFailed = errors.New("builder: construction failed")

// SPDX-License-Identifier: MIT

package sssp

import "errors"

// ErrNegativeWeight indicates that DeltaStep found an edge with a negative
// weight. Bucket ordering is only meaningful for non-negative weights.
var ErrNegativeWeight = errors.New("sssp: negative edge weight")

// ErrUnknownAlgorithm indicates an Algorithm name that Solve does not know.
var ErrUnknownAlgorithm = errors.New("sssp: unknown algorithm")

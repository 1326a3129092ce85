// SPDX-License-Identifier: MIT

// Package algebra: scalar constraints and operator types.
package algebra

// Signed matches every signed integer kind.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned matches every unsigned integer kind.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float matches both float kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the capability set of scalars that can be ordered and combined
// algebraically. All arithmetic operators and semirings are bound to it.
type Number interface {
	Signed | Unsigned | Float
}

// UnaryOp is a named scalar transform T → R.
// Fn may fail; the engine aborts the whole bulk operation on the first error
// and leaves the output container untouched.
type UnaryOp[T, R any] struct {
	Name string
	Fn   func(x T) (R, error)
}

// Valid reports whether the operator carries a function.
func (op UnaryOp[T, R]) Valid() bool { return op.Fn != nil }

// BinaryOp is a named scalar combination (T, T) → R.
//
// Identity is what an absent operand contributes in union (EWiseAdd) semantics:
// for Min it is +∞, for Plus 0, for LogicalOr false, and for the comparison
// operators it is chosen so that a present operand wins against an absent one.
//
// The zero value (Fn == nil) means "no operator"; the engine reads it as
// NoAccumulate.
type BinaryOp[T, R any] struct {
	Name     string
	Fn       func(a, b T) R
	Identity T
}

// Valid reports whether the operator carries a function.
func (op BinaryOp[T, R]) Valid() bool { return op.Fn != nil }

// NoAccumulate returns the empty BinaryOp. Passing it as accum makes a bulk
// operation overwrite selected output positions instead of combining.
func NoAccumulate[T any]() BinaryOp[T, T] {
	return BinaryOp[T, T]{}
}

// Semiring carries the (Combine, Extend, Identity) triple used by VxM, MxV and
// MxM: out[j] = Combine over i of Extend(left[i], right[i][j]).
// Identity must be the identity of Combine; it is also the implied value of
// every absent entry under this semiring.
type Semiring[T any] struct {
	Name     string
	Combine  func(a, b T) T
	Extend   func(a, b T) T
	Identity T
}

// CombineOp exposes the additive part of the semiring as a BinaryOp, so it can
// be reused as an accumulator or as a reduce operator.
func (s Semiring[T]) CombineOp() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: s.Name + ".combine", Fn: s.Combine, Identity: s.Identity}
}

// Package algebra is the operator catalog of gblas: scalar constraints,
// named unary and binary operators, and the semirings that parameterize the
// bulk operations of package graphblas.
//
// Overview:
//
//   - UnaryOp[T, R] transforms one scalar. It is fallible so that operators such
//     as MultiplicativeInverse can report ErrDivideByZero instead of producing an
//     undefined value.
//   - BinaryOp[T, R] combines two scalars. Its Identity is the value an absent
//     operand contributes to union operations (graphblas.EWiseAdd). The zero
//     value of BinaryOp (nil Fn) is the "no accumulate" marker.
//   - Semiring[T] is a value-like struct: a Combine closure, an Extend closure and
//     the Combine identity. Min-plus is the shortest-path semiring; plus-times is
//     ordinary arithmetic.
//
// Implied zero:
//
//	Under MinPlus an absent matrix entry behaves as +∞ (Infinity[T]), not as 0.
//	Every algorithm that treats absence as infinity must run under a semiring
//	whose Identity is Infinity[T]. The engine never materializes implied values;
//	it simply skips them.
//
// Scalars:
//
//	Number covers every Go integer and float kind. For integer kinds Infinity
//	is the maximum representable value; callers must keep finite sums below it.
//
// Thread safety:
//
//   - Every constructor returns a fresh, stateless value; operators are safe for
//     concurrent use unless a caller-supplied closure captures mutable state.
package algebra

// SPDX-License-Identifier: MIT

package algebra

// ---------- arithmetic ----------

// Plus is a + b with identity 0.
func Plus[T Number]() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: "plus", Fn: func(a, b T) T { return a + b }, Identity: 0}
}

// Minus is a - b with identity 0.
func Minus[T Number]() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: "minus", Fn: func(a, b T) T { return a - b }, Identity: 0}
}

// Times is a * b with identity 1.
func Times[T Number]() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: "times", Fn: func(a, b T) T { return a * b }, Identity: 1}
}

// Div is a / b with identity 1. Integer division by zero panics, as in Go.
func Div[T Number]() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: "div", Fn: func(a, b T) T { return a / b }, Identity: 1}
}

// Min is min(a, b) with identity Infinity[T].
func Min[T Number]() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: "min", Fn: func(a, b T) T { return min(a, b) }, Identity: Infinity[T]()}
}

// Max is max(a, b) with identity NegInfinity[T].
func Max[T Number]() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: "max", Fn: func(a, b T) T { return max(a, b) }, Identity: NegInfinity[T]()}
}

// First returns a. It has no meaningful identity and is meant for build
// duplicate resolution and accumulation, not for union operations.
func First[T any]() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: "first", Fn: func(a, _ T) T { return a }}
}

// Second returns b ("last wins"); same caveat as First.
func Second[T any]() BinaryOp[T, T] {
	return BinaryOp[T, T]{Name: "second", Fn: func(_, b T) T { return b }}
}

// ---------- comparisons ----------
//
// Identities make a present operand win against an absent one in a union:
// LessThan(a, absent) == true, GreaterThan(a, absent) == true.

// LessThan is a < b; an absent operand behaves as +∞.
func LessThan[T Number]() BinaryOp[T, bool] {
	return BinaryOp[T, bool]{Name: "lt", Fn: func(a, b T) bool { return a < b }, Identity: Infinity[T]()}
}

// LessEqual is a <= b; an absent operand behaves as +∞.
func LessEqual[T Number]() BinaryOp[T, bool] {
	return BinaryOp[T, bool]{Name: "le", Fn: func(a, b T) bool { return a <= b }, Identity: Infinity[T]()}
}

// GreaterThan is a > b; an absent operand behaves as -∞.
func GreaterThan[T Number]() BinaryOp[T, bool] {
	return BinaryOp[T, bool]{Name: "gt", Fn: func(a, b T) bool { return a > b }, Identity: NegInfinity[T]()}
}

// GreaterEqual is a >= b; an absent operand behaves as -∞.
func GreaterEqual[T Number]() BinaryOp[T, bool] {
	return BinaryOp[T, bool]{Name: "ge", Fn: func(a, b T) bool { return a >= b }, Identity: NegInfinity[T]()}
}

// Equal is a == b with identity zero.
func Equal[T comparable]() BinaryOp[T, bool] {
	return BinaryOp[T, bool]{Name: "eq", Fn: func(a, b T) bool { return a == b }}
}

// NotEqual is a != b with identity zero.
func NotEqual[T comparable]() BinaryOp[T, bool] {
	return BinaryOp[T, bool]{Name: "ne", Fn: func(a, b T) bool { return a != b }}
}

// ---------- logical ----------

// LogicalOr is a || b with identity false.
func LogicalOr() BinaryOp[bool, bool] {
	return BinaryOp[bool, bool]{Name: "lor", Fn: func(a, b bool) bool { return a || b }, Identity: false}
}

// LogicalAnd is a && b with identity true.
func LogicalAnd() BinaryOp[bool, bool] {
	return BinaryOp[bool, bool]{Name: "land", Fn: func(a, b bool) bool { return a && b }, Identity: true}
}

// LogicalXor is a != b with identity false.
func LogicalXor() BinaryOp[bool, bool] {
	return BinaryOp[bool, bool]{Name: "lxor", Fn: func(a, b bool) bool { return a != b }, Identity: false}
}

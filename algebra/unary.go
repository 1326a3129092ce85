// SPDX-License-Identifier: MIT

package algebra

// Identity returns x unchanged.
func Identity[T any]() UnaryOp[T, T] {
	return UnaryOp[T, T]{
		Name: "identity",
		Fn:   func(x T) (T, error) { return x, nil },
	}
}

// AdditiveInverse returns -x. Unsigned kinds wrap around.
func AdditiveInverse[T Number]() UnaryOp[T, T] {
	return UnaryOp[T, T]{
		Name: "ainv",
		Fn:   func(x T) (T, error) { return -x, nil },
	}
}

// MultiplicativeInverse returns 1/x and fails with ErrDivideByZero when x is
// the additive identity. Integer kinds use integer division.
func MultiplicativeInverse[T Number]() UnaryOp[T, T] {
	return UnaryOp[T, T]{
		Name: "minv",
		Fn: func(x T) (T, error) {
			if x == 0 {
				return 0, ErrDivideByZero
			}
			return 1 / x, nil
		},
	}
}

// Abs returns |x|.
func Abs[T Number]() UnaryOp[T, T] {
	return UnaryOp[T, T]{
		Name: "abs",
		Fn: func(x T) (T, error) {
			if x < 0 {
				return -x, nil
			}
			return x, nil
		},
	}
}

// LogicalNot negates a boolean.
func LogicalNot() UnaryOp[bool, bool] {
	return UnaryOp[bool, bool]{
		Name: "lnot",
		Fn:   func(x bool) (bool, error) { return !x, nil },
	}
}

// Cast converts between numeric kinds with Go conversion rules.
func Cast[T, R Number]() UnaryOp[T, R] {
	return UnaryOp[T, R]{
		Name: "cast",
		Fn:   func(x T) (R, error) { return R(x), nil },
	}
}

// One maps every present value to 1, keeping only the structure.
func One[T any, R Number]() UnaryOp[T, R] {
	return UnaryOp[T, R]{
		Name: "one",
		Fn:   func(T) (R, error) { return 1, nil },
	}
}

// InRange selects values in the half-open interval [low, high).
// Delta-stepping uses it to compute bucket membership.
func InRange[T Number](low, high T) UnaryOp[T, bool] {
	return UnaryOp[T, bool]{
		Name: "in_range",
		Fn:   func(x T) (bool, error) { return low <= x && x < high, nil },
	}
}

// Bind1st fixes the first operand of op: x ↦ op(v, x).
func Bind1st[T, R any](op BinaryOp[T, R], v T) UnaryOp[T, R] {
	fn := op.Fn
	return UnaryOp[T, R]{
		Name: op.Name + ".bind1st",
		Fn:   func(x T) (R, error) { return fn(v, x), nil },
	}
}

// Bind2nd fixes the second operand of op: x ↦ op(x, v).
// Bind2nd(LessEqual[T](), delta) is the light-edge predicate.
func Bind2nd[T, R any](op BinaryOp[T, R], v T) UnaryOp[T, R] {
	fn := op.Fn
	return UnaryOp[T, R]{
		Name: op.Name + ".bind2nd",
		Fn:   func(x T) (R, error) { return fn(x, v), nil },
	}
}

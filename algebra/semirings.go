// SPDX-License-Identifier: MIT

package algebra

// MinPlus is the tropical (shortest-path) semiring: combine=min, extend=+,
// identity=+∞. An absent edge is an infinitely long edge.
func MinPlus[T Number]() Semiring[T] {
	return Semiring[T]{
		Name:     "min_plus",
		Combine:  func(a, b T) T { return min(a, b) },
		Extend:   func(a, b T) T { return a + b },
		Identity: Infinity[T](),
	}
}

// MaxPlus is combine=max, extend=+, identity=-∞ (longest paths on DAGs).
func MaxPlus[T Number]() Semiring[T] {
	return Semiring[T]{
		Name:     "max_plus",
		Combine:  func(a, b T) T { return max(a, b) },
		Extend:   func(a, b T) T { return a + b },
		Identity: NegInfinity[T](),
	}
}

// Arithmetic is the ordinary plus-times semiring with identity 0.
func Arithmetic[T Number]() Semiring[T] {
	return Semiring[T]{
		Name:     "plus_times",
		Combine:  func(a, b T) T { return a + b },
		Extend:   func(a, b T) T { return a * b },
		Identity: 0,
	}
}

// MinTimes is combine=min, extend=*, identity=+∞.
func MinTimes[T Number]() Semiring[T] {
	return Semiring[T]{
		Name:     "min_times",
		Combine:  func(a, b T) T { return min(a, b) },
		Extend:   func(a, b T) T { return a * b },
		Identity: Infinity[T](),
	}
}

// MaxTimes is combine=max, extend=*, identity=-∞.
func MaxTimes[T Number]() Semiring[T] {
	return Semiring[T]{
		Name:     "max_times",
		Combine:  func(a, b T) T { return max(a, b) },
		Extend:   func(a, b T) T { return a * b },
		Identity: NegInfinity[T](),
	}
}

// MinSelect1st keeps the smallest left-hand operand. With vertex ids on the
// left, VxM picks the lowest-numbered parent of every reached vertex.
func MinSelect1st[T Number]() Semiring[T] {
	return Semiring[T]{
		Name:     "min_first",
		Combine:  func(a, b T) T { return min(a, b) },
		Extend:   func(a, _ T) T { return a },
		Identity: Infinity[T](),
	}
}

// MinSelect2nd keeps the smallest right-hand operand (parent selection).
func MinSelect2nd[T Number]() Semiring[T] {
	return Semiring[T]{
		Name:     "min_second",
		Combine:  func(a, b T) T { return min(a, b) },
		Extend:   func(_, b T) T { return b },
		Identity: Infinity[T](),
	}
}

// MaxSelect2nd keeps the largest right-hand operand; MIS uses it to find the
// neighbour holding the maximum random score.
func MaxSelect2nd[T Number]() Semiring[T] {
	return Semiring[T]{
		Name:     "max_second",
		Combine:  func(a, b T) T { return max(a, b) },
		Extend:   func(_, b T) T { return b },
		Identity: NegInfinity[T](),
	}
}

// Logical is the boolean or-and semiring (reachability).
func Logical() Semiring[bool] {
	return Semiring[bool]{
		Name:     "lor_land",
		Combine:  func(a, b bool) bool { return a || b },
		Extend:   func(a, b bool) bool { return a && b },
		Identity: false,
	}
}

// SPDX-License-Identifier: MIT

package algebra

import (
	"math"
	"reflect"
)

// Infinity returns +Inf for float kinds and the maximum representable value
// for integer kinds. It is the Identity of Min and of every min-* semiring.
func Infinity[T Number]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		v := math.Inf(1)
		return T(v)
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return T(v)
	case reflect.Int, reflect.Int64:
		v := int64(math.MaxInt64)
		if reflect.TypeOf(zero).Size() == 4 {
			v = math.MaxInt32
		}
		return T(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	default: // Uint, Uint64
		v := uint64(math.MaxUint64)
		if reflect.TypeOf(zero).Size() == 4 {
			v = math.MaxUint32
		}
		return T(v)
	}
}

// NegInfinity returns -Inf for float kinds, the minimum representable value
// for signed kinds and 0 for unsigned kinds. It is the Identity of Max.
func NegInfinity[T Number]() T {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Float32, reflect.Float64:
		v := math.Inf(-1)
		return T(v)
	case reflect.Int8:
		v := int64(math.MinInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MinInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MinInt32)
		return T(v)
	case reflect.Int, reflect.Int64:
		v := int64(math.MinInt64)
		if reflect.TypeOf(zero).Size() == 4 {
			v = math.MinInt32
		}
		return T(v)
	default:
		return zero
	}
}

// IsFloat reports whether T is a float kind.
func IsFloat[T Number]() bool {
	var zero T
	k := reflect.TypeOf(zero).Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// IsUnsigned reports whether T is an unsigned integer kind.
// Unsigned domains cannot hold negative edge weights, so validators skip them.
func IsUnsigned[T Number]() bool {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

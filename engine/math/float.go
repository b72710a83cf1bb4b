package math

import (
	m "math"

	"golang.org/x/exp/constraints"
)

// The comparisons below treat two values as equal when they are at most a
// tolerance apart. The plain forms use Epsilon, the *Tolerance forms take it
// explicitly. Every geometric predicate in this package is built on them.

func IsZero[T constraints.Float](v T) bool {
	return IsZeroTolerance(v, T(Epsilon))
}

func IsZeroTolerance[T constraints.Float](v, tolerance T) bool {
	return Abs(v) <= tolerance
}

func IsNotZero[T constraints.Float](v T) bool {
	return !IsZero(v)
}

func AreEqual[T constraints.Float](a, b T) bool {
	return AreEqualTolerance(a, b, T(Epsilon))
}

func AreEqualTolerance[T constraints.Float](a, b, tolerance T) bool {
	return Abs(a-b) <= tolerance
}

func AreNotEqual[T constraints.Float](a, b T) bool {
	return !AreEqual(a, b)
}

// IsGreaterThan reports a > b by more than Epsilon.
func IsGreaterThan[T constraints.Float](a, b T) bool {
	return a-b > T(Epsilon)
}

// IsLessThan reports a < b by more than Epsilon.
func IsLessThan[T constraints.Float](a, b T) bool {
	return b-a > T(Epsilon)
}

func IsGreaterOrEquals[T constraints.Float](a, b T) bool {
	return !IsLessThan(a, b)
}

func IsLessOrEquals[T constraints.Float](a, b T) bool {
	return !IsGreaterThan(a, b)
}

func IsPositive[T constraints.Float](v T) bool {
	return IsGreaterThan(v, 0)
}

func IsNegative[T constraints.Float](v T) bool {
	return IsLessThan(v, 0)
}

func IsNaN[T constraints.Float](v T) bool {
	return v != v
}

func IsInfinite[T constraints.Float](v T) bool {
	return m.IsInf(float64(v), 0)
}

// IsValid is false for NaN and infinities.
func IsValid[T constraints.Float](v T) bool {
	return !IsNaN(v) && !IsInfinite(v)
}

func Abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1, using Epsilon for the zero band.
func Sign[T constraints.Float](v T) T {
	switch {
	case IsZero(v):
		return 0
	case v < 0:
		return -1
	default:
		return 1
	}
}

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

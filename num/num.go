package num

import (
	"golang.org/x/exp/constraints"
)

// Value constrains the types the blend primitives operate on. A
// conforming type is closed under addition with itself, multiplication
// with itself, and scaling by a float32 fraction, and has value
// semantics: every operation returns an independent result and no
// operation mutates its operands.
//
// Mul is part of the capability set but is not invoked by the blend
// formulas; it is assumed (not verified) to be commutative. Types with a
// non-commutative product, such as [Quat], still conform; see the
// caveat on [Quat.Mul].
type Value[T any] interface {
	Add(T) T
	Mul(T) T
	Scale(float32) T
}

// Scalar is a float32 conforming to [Value].
type Scalar float32

// Add returns s + o.
func (s Scalar) Add(o Scalar) Scalar { return s + o }

// Mul returns s * o.
func (s Scalar) Mul(o Scalar) Scalar { return s * o }

// Scale returns s * f.
func (s Scalar) Scale(f float32) Scalar { return s * Scalar(f) }

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[F constraints.Float](v, lo, hi F) F {
	if lo > hi {
		lo, hi = hi, lo
	}

	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

const defaultEpsilon = 1e-6

// NearlyEqual reports whether a and b are equal within eps, using a
// relative comparison for large magnitudes.
func NearlyEqual[F constraints.Float](a, b, eps F) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := abs(a - b)
	if diff <= eps {
		return true
	}

	largest := abs(a)
	if ab := abs(b); ab > largest {
		largest = ab
	}

	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

func abs[F constraints.Float](x F) F {
	if x < 0 {
		return -x
	}

	return x
}

package interp

import (
	"github.com/aunyks/easig/num"
)

// Lerp linearly interpolates between a and b:
//
//	result = a*(1-alpha) + b*alpha
//
// evaluated in exactly that order: a is scaled by the complement, b by
// alpha, and the two scaled values are summed. The order is part of the
// contract for types whose operations are not exactly associative or
// commutative in floating point.
//
// alpha = 0 returns a, alpha = 1 returns b. Values outside [0, 1] are
// accepted and extrapolate; no validation is performed.
func Lerp[T num.Value[T]](a, b T, alpha float32) T {
	return a.Scale(1 - alpha).Add(b.Scale(alpha))
}

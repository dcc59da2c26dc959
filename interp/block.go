package interp

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by block interpolation functions.
var ErrLengthMismatch = errors.New("interp: slice lengths differ")

// LerpBlock writes the elementwise blend of a and b into dst:
//
//	dst[i] = a[i]*(1-alpha) + b[i]*alpha
//
// All three slices must have the same length. dst may alias a.
// Uses SIMD-accelerated block operations where available.
func LerpBlock(dst, a, b []float64, alpha float64) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return ErrLengthMismatch
	}

	if len(a) == 0 {
		return nil
	}

	scaled := make([]float64, len(b))
	vecmath.ScaleBlock(scaled, b, alpha)
	vecmath.ScaleBlock(dst, a, 1-alpha)
	vecmath.AddBlockInPlace(dst, scaled)

	return nil
}

// LerpBlockInPlace blends b into a elementwise: a[i] = a[i]*(1-alpha) + b[i]*alpha.
func LerpBlockInPlace(a, b []float64, alpha float64) error {
	return LerpBlock(a, a, b, alpha)
}

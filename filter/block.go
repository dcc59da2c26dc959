package filter

import "errors"

// ErrLengthMismatch is returned when dst and src lengths differ.
var ErrLengthMismatch = errors.New("filter: slice lengths differ")

// Smooth runs the first-order recurrence across src, writing each
// intermediate estimate into dst:
//
//	y[i] = src[i]*alpha + y[i-1]*(1-alpha),  y[-1] = initial
//
// dst and src must have the same length; dst may alias src. The
// recurrence is inherently sequential, so this is a scalar loop.
func Smooth(dst, src []float64, initial, alpha float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	prev := initial
	for i, x := range src {
		prev = x*alpha + prev*(1-alpha)
		dst[i] = prev
	}

	return nil
}

// SmoothInPlace runs the first-order recurrence over buf in place.
func SmoothInPlace(buf []float64, initial, alpha float64) {
	// lengths always match
	_ = Smooth(buf, buf, initial, alpha)
}

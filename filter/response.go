package filter

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of the
// first-order smoother with coefficient alpha at the given frequency
// (Hz) and sample rate (Hz):
//
//	H(z) = alpha / (1 - (1-alpha)*z^-1)
func Response(alpha, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	ejw := cmplx.Exp(complex(0, -w))

	return complex(alpha, 0) / (complex(1, 0) - complex(1-alpha, 0)*ejw)
}

// MagnitudeSquared returns |H(f)|^2 using a closed-form expression,
// avoiding complex exponentials.
func MagnitudeSquared(alpha, freqHz, sampleRate float64) float64 {
	b := 1 - alpha
	cw := math.Cos(2 * math.Pi * freqHz / sampleRate)

	return alpha * alpha / (1 + b*b - 2*b*cw)
}

// MagnitudeDB returns 10*log10(|H(f)|^2).
func MagnitudeDB(alpha, freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(MagnitudeSquared(alpha, freqHz, sampleRate))
}

// Phase returns the phase response in radians at the given frequency.
// The result is in [-pi, pi], consistent with the H(e^{-jw}) convention.
func Phase(alpha, freqHz, sampleRate float64) float64 {
	return cmplx.Phase(Response(alpha, freqHz, sampleRate))
}

package filter

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrSpectrumSize is returned when the FFT size is not a positive power of two.
var ErrSpectrumSize = errors.New("filter: spectrum size must be a positive power of two")

// MagnitudeSpectrum returns the n-point FFT magnitude of the smoother's
// impulse response h[k] = alpha*(1-alpha)^k for the given coefficient.
//
// n must be a positive power of two. Bin k corresponds to the normalized
// frequency k/n; for alpha in (0, 1) the truncation error after n points
// is (1-alpha)^n, negligible for typical sizes.
func MagnitudeSpectrum(alpha float64, n int) ([]float64, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, ErrSpectrumSize
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("filter: failed to create FFT plan: %w", err)
	}

	impulse := make([]complex128, n)
	h := alpha
	for i := range impulse {
		impulse[i] = complex(h, 0)
		h *= 1 - alpha
	}

	spec := make([]complex128, n)
	if err := plan.Forward(spec, impulse); err != nil {
		return nil, fmt.Errorf("filter: forward FFT failed: %w", err)
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range spec {
		re[i] = real(c)
		im[i] = imag(c)
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

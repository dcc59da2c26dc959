package filter

import (
	"errors"
	"math"

	"github.com/aunyks/easig/num"
)

// Errors returned by the validating constructor and setters.
var (
	ErrAlphaRange     = errors.New("filter: alpha outside [0, 1]")
	ErrAlphaNotFinite = errors.New("filter: alpha is not finite")
)

// Checked wraps a [Filter] with coefficient validation. The prediction
// path is identical to the unchecked filter; only construction and
// SetAlpha can fail.
type Checked[T num.Value[T]] struct {
	f Filter[T]
}

// NewChecked returns a validated filter. It fails if alpha is NaN,
// infinite, or outside [0, 1].
func NewChecked[T num.Value[T]](initial T, alpha float32) (*Checked[T], error) {
	if err := checkAlpha(alpha); err != nil {
		return nil, err
	}

	return &Checked[T]{f: Filter[T]{current: initial, alpha: alpha}}, nil
}

// SetAlpha replaces the blend coefficient after validating it. On error
// the previous coefficient is kept.
func (c *Checked[T]) SetAlpha(alpha float32) error {
	if err := checkAlpha(alpha); err != nil {
		return err
	}

	c.f.SetAlpha(alpha)

	return nil
}

// Alpha returns the current blend coefficient.
func (c *Checked[T]) Alpha() float32 {
	return c.f.Alpha()
}

// Current returns the running estimate.
func (c *Checked[T]) Current() T {
	return c.f.Current()
}

// Reset replaces the running estimate without touching the coefficient.
func (c *Checked[T]) Reset(value T) {
	c.f.Reset(value)
}

// PredictNext delegates to the wrapped filter unchanged.
func (c *Checked[T]) PredictNext(value T) T {
	return c.f.PredictNext(value)
}

func checkAlpha(alpha float32) error {
	f := float64(alpha)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ErrAlphaNotFinite
	}

	if alpha < 0 || alpha > 1 {
		return ErrAlphaRange
	}

	return nil
}

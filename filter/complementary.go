package filter

import (
	"github.com/aunyks/easig/num"
)

// Filter is a first-order complementary filter over any [num.Value]
// type. It holds the most recent estimate and a blend coefficient; each
// [Filter.PredictNext] call folds a new measurement into the estimate.
//
// The zero value is usable as a filter seeded with the zero value of T
// and alpha 0; most callers want [New].
type Filter[T num.Value[T]] struct {
	// y_(k-1)
	current T
	alpha   float32
}

// New returns a filter seeded with initial and the given coefficient.
//
// Both fields are stored verbatim. alpha is expected to lie in [0, 1]
// but is not checked; use [NewChecked] for a validating constructor.
func New[T num.Value[T]](initial T, alpha float32) *Filter[T] {
	return &Filter[T]{current: initial, alpha: alpha}
}

// Alpha returns the current blend coefficient.
func (f *Filter[T]) Alpha() float32 {
	return f.alpha
}

// Current returns the running estimate, i.e. the value returned by the
// most recent PredictNext call (or the seed if none has been made).
func (f *Filter[T]) Current() T {
	return f.current
}

// SetAlpha replaces the blend coefficient unconditionally. The new
// coefficient takes effect on the next PredictNext call only; the
// running estimate is not recomputed.
//
// alpha is expected to lie in [0, 1] but is not checked.
func (f *Filter[T]) SetAlpha(alpha float32) {
	f.alpha = alpha
}

// Reset replaces the running estimate without touching the coefficient.
func (f *Filter[T]) Reset(value T) {
	f.current = value
}

// PredictNext folds a new measurement into the estimate:
//
//	y_k = value*alpha + current*(1-alpha)
//
// The new measurement is weighted by alpha and the prior estimate by the
// complement (the mirror of [interp.Lerp]'s argument order: alpha is
// trust in the measurement, not in history). y_k replaces the running
// estimate and is returned.
//
// The formula assumes commutative multiplication for T; for types with a
// non-commutative product (see [num.Quat.Mul]) the blend itself is
// unaffected since only scaling and addition are used.
func (f *Filter[T]) PredictNext(value T) T {
	yk := value.Scale(f.alpha).Add(f.current.Scale(1 - f.alpha))
	f.current = yk

	return yk
}

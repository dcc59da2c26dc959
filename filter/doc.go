// Package filter provides first-order complementary filter primitives.
//
// A [Filter] blends each new measurement with the running estimate using
// a fixed coefficient alpha, where alpha weights the new measurement and
// (1-alpha) the prior estimate. It is the classic building block for
// sensor fusion (gyro/accelerometer orientation) and for smoothing any
// blendable quantity.
//
//   - [Filter]: the unchecked core; no coefficient validation, branch-free
//   - [Checked]: an optional validating wrapper that rejects coefficients
//     outside [0, 1]
//   - [Smooth], [SmoothInPlace]: block smoothing over float64 buffers
//   - [Response], [MagnitudeDB], [MagnitudeSpectrum]: frequency-domain
//     views of the smoother with a given coefficient
//
// A Filter instance is meant to be owned and mutated by a single caller;
// the package performs no synchronization.
package filter

// Package interp provides linear interpolation primitives.
//
//   - [Lerp]: generic 2-value linear interpolation over any [num.Value] type
//   - [LerpBlock], [LerpBlockInPlace]: vectorized elementwise blends of
//     equal-length float64 blocks
//
// The blend fraction is unconstrained: values outside [0, 1] extrapolate
// rather than interpolate, and no range checks are performed.
package interp

// Package num defines the arithmetic capability set shared by the
// interpolation and filter primitives, plus conforming value types.
//
// Any type implementing [Value] can be blended:
//
//   - [Scalar]: a float32 wrapper
//   - [Vec3], [Vec4]: componentwise vectors
//   - [Quat]: a quaternion (Hamilton product)
//
// The blend coefficient is always a float32. The package also provides
// small float helpers ([NearlyEqual], [Clamp]) for callers that want to
// enforce coefficient ranges themselves; the core primitives never do.
package num

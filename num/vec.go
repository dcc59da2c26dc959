package num

// Vec3 is a 3-component vector conforming to [Value].
type Vec3 struct {
	X, Y, Z float32
}

// Add returns the componentwise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Mul returns the componentwise (Hadamard) product v * o.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Scale returns v with every component multiplied by f.
func (v Vec3) Scale(f float32) Vec3 {
	return Vec3{v.X * f, v.Y * f, v.Z * f}
}

// Vec4 is a 4-component vector conforming to [Value].
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns the componentwise sum v + o.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Mul returns the componentwise (Hadamard) product v * o.
func (v Vec4) Mul(o Vec4) Vec4 {
	return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Scale returns v with every component multiplied by f.
func (v Vec4) Scale(f float32) Vec4 {
	return Vec4{v.X * f, v.Y * f, v.Z * f, v.W * f}
}

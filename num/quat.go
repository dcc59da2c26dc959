package num

// Quat is a quaternion w + i*I + j*J + k*K conforming to [Value].
// Typical use is blending orientation estimates, where each component is
// scaled and summed independently.
type Quat struct {
	I, J, K float32 // imaginary parts
	W       float32 // real (scalar) part
}

// QuatIdentity returns the identity quaternion (W = 1, imaginary parts zero).
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// Add returns the componentwise sum q + o.
func (q Quat) Add(o Quat) Quat {
	return Quat{
		I: q.I + o.I,
		J: q.J + o.J,
		K: q.K + o.K,
		W: q.W + o.W,
	}
}

// Mul returns the Hamilton product q * o.
//
// The Hamilton product is not commutative (q.Mul(o) != o.Mul(q) in
// general). The blend primitives never call Mul, so their results are
// unaffected, but code relying on the documented commutativity of the
// [Value] capability set must account for this.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		I: q.W*o.I + q.I*o.W + q.J*o.K - q.K*o.J,
		J: q.W*o.J - q.I*o.K + q.J*o.W + q.K*o.I,
		K: q.W*o.K + q.I*o.J - q.J*o.I + q.K*o.W,
		W: q.W*o.W - q.I*o.I - q.J*o.J - q.K*o.K,
	}
}

// Scale returns q with every component multiplied by f.
func (q Quat) Scale(f float32) Quat {
	return Quat{
		I: q.I * f,
		J: q.J * f,
		K: q.K * f,
		W: q.W * f,
	}
}

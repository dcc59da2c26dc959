package interp

import (
	"testing"

	"github.com/aunyks/easig/num"
)

func TestLerpScalarEndpoints(t *testing.T) {
	a, b := num.Scalar(1), num.Scalar(2)

	if got := Lerp(a, b, 0); got != a {
		t.Fatalf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Fatalf("Lerp(a, b, 1) = %v, want %v", got, b)
	}
}

func TestLerpScalar(t *testing.T) {
	tests := []struct {
		name     string
		a        num.Scalar
		b        num.Scalar
		alpha    float32
		expected float32
	}{
		{name: "mid", a: 0, b: 10, alpha: 0.5, expected: 5},
		{name: "toward b", a: 1, b: 2, alpha: 0.8, expected: 1.8},
		{name: "toward a", a: 1, b: 2, alpha: 0.2, expected: 1.2},
		{name: "extrapolate above", a: 0, b: 1, alpha: 2, expected: 2},
		{name: "extrapolate below", a: 0, b: 1, alpha: -1, expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.a, tt.b, tt.alpha)
			if !num.NearlyEqual(float32(got), tt.expected, 0.01) {
				t.Fatalf("Lerp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLerpMonotonicBounds(t *testing.T) {
	a, b := num.Scalar(-3), num.Scalar(7)

	for _, alpha := range []float32{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		got := Lerp(a, b, alpha)
		if got < a || got > b {
			t.Fatalf("alpha=%v: Lerp() = %v outside [%v, %v]", alpha, got, a, b)
		}
	}
}

func TestLerpVec3(t *testing.T) {
	a := num.Vec3{X: 0, Y: 10, Z: -2}
	b := num.Vec3{X: 4, Y: 20, Z: 2}

	got := Lerp(a, b, 0.25)
	want := num.Vec3{X: 1, Y: 12.5, Z: -1}

	if !num.NearlyEqual(got.X, want.X, 0.01) ||
		!num.NearlyEqual(got.Y, want.Y, 0.01) ||
		!num.NearlyEqual(got.Z, want.Z, 0.01) {
		t.Fatalf("Lerp() = %v, want %v", got, want)
	}
}

func TestLerpQuat(t *testing.T) {
	a := num.QuatIdentity()
	b := num.Quat{I: 2, J: 4, K: 6, W: 3}

	got := Lerp(a, b, 0.5)

	if !num.NearlyEqual(got.I, 1, 0.01) ||
		!num.NearlyEqual(got.J, 2, 0.01) ||
		!num.NearlyEqual(got.K, 3, 0.01) ||
		!num.NearlyEqual(got.W, 2, 0.01) {
		t.Fatalf("Lerp() = %v, want {1 2 3 2}", got)
	}
}

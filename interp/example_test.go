package interp_test

import (
	"fmt"

	"github.com/aunyks/easig/interp"
	"github.com/aunyks/easig/num"
)

func ExampleLerp() {
	got := interp.Lerp(num.Scalar(1), num.Scalar(2), 0.8)
	fmt.Printf("%.2f\n", float32(got))

	// Output:
	// 1.80
}

func ExampleLerp_vec3() {
	a := num.Vec3{X: 0, Y: 0, Z: 0}
	b := num.Vec3{X: 10, Y: 20, Z: 30}

	mid := interp.Lerp(a, b, 0.5)
	fmt.Printf("%.1f %.1f %.1f\n", mid.X, mid.Y, mid.Z)

	// Output:
	// 5.0 10.0 15.0
}

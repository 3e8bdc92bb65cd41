// quaternions - rotation demo
// Rotates the vector (2, 0, 0) by 45 degrees about +Y and prints the result.
package main

import (
	"fmt"
	"math"

	"github.com/taigrr/quaternions/pkg/math3d"
)

func main() {
	v := math3d.NewVec3().
		X(2).
		Y(0).
		Z(0).
		Build()

	q := math3d.NewAxisAngle().
		Y(1).
		Angle(math.Pi / 4).
		Normalized(true).
		Build()

	fmt.Println(format(v.Rotate(q)))
}

// format renders a vector the way the demo prints it.
func format(v math3d.Vec3) string {
	return fmt.Sprintf("X: %.4f, Y: %.4f, Z: %.4f", v.X(), v.Y(), v.Z())
}

// Package math3d provides 3D rotation primitives built on quaternion algebra.
package math3d

import (
	"fmt"
	"math"
)

// Vec3 represents an immutable 3D vector.
// The magnitude is computed once when the vector is built.
type Vec3 struct {
	x, y, z   float64
	magnitude float64
}

// Vec3Builder collects components for a Vec3. The zero value builds (0, 0, 0).
type Vec3Builder struct {
	x, y, z float64
}

// NewVec3 starts building a Vec3 with all components set to 0.
func NewVec3() Vec3Builder {
	return Vec3Builder{}
}

// X sets the x component.
func (b Vec3Builder) X(val float64) Vec3Builder {
	b.x = val
	return b
}

// Y sets the y component.
func (b Vec3Builder) Y(val float64) Vec3Builder {
	b.y = val
	return b
}

// Z sets the z component.
func (b Vec3Builder) Z(val float64) Vec3Builder {
	b.z = val
	return b
}

// Build computes the magnitude and returns the finished vector.
func (b Vec3Builder) Build() Vec3 {
	return Vec3{
		x:         b.x,
		y:         b.y,
		z:         b.z,
		magnitude: math.Sqrt(b.x*b.x + b.y*b.y + b.z*b.z),
	}
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return NewVec3().X(x).Y(y).Z(z).Build()
}

// X returns the x component.
func (v Vec3) X() float64 { return v.x }

// Y returns the y component.
func (v Vec3) Y() float64 { return v.y }

// Z returns the z component.
func (v Vec3) Z() float64 { return v.z }

// Magnitude returns the length cached at build time.
func (v Vec3) Magnitude() float64 { return v.magnitude }

// Rotate returns v rotated by q using the sandwich product q * p * q*.
//
// q must be a unit quaternion. The result keeps v's magnitude instead of
// recomputing it, which is only correct for rotations that preserve length.
// A non-unit q scales the components but leaves the stored magnitude stale.
func (v Vec3) Rotate(q Quaternion) Vec3 {
	p := NewWXYZ().
		X(v.x).
		Y(v.y).
		Z(v.z).
		Normalized(false).
		Build()

	rotated := q.Mul(p).Mul(q.Conjugate()).AsVec3()

	return Vec3{
		x:         rotated.x,
		y:         rotated.y,
		z:         rotated.z,
		magnitude: v.magnitude,
	}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.x, v.y, v.z)
}

package math3d

import (
	"fmt"
	"math"
)

// Quaternion is an immutable rotation value (w; x, y, z), where w is the
// scalar part.
//
// The stored norm is the magnitude of the components as they were before any
// normalization in the builder. Inverse and Normalize carry it over unchanged
// while Conjugate and Mul recompute it.
type Quaternion struct {
	w, x, y, z float64
	norm       float64
}

// AxisAngleBuilder builds a Quaternion from a rotation axis and an angle.
type AxisAngleBuilder struct {
	x, y, z    float64
	angle      float64
	normalized bool
}

// NewAxisAngle starts building a quaternion from an axis and angle.
// All options default to zero and normalization is off.
func NewAxisAngle() AxisAngleBuilder {
	return AxisAngleBuilder{}
}

// X sets the axis x component.
func (b AxisAngleBuilder) X(val float64) AxisAngleBuilder {
	b.x = val
	return b
}

// Y sets the axis y component.
func (b AxisAngleBuilder) Y(val float64) AxisAngleBuilder {
	b.y = val
	return b
}

// Z sets the axis z component.
func (b AxisAngleBuilder) Z(val float64) AxisAngleBuilder {
	b.z = val
	return b
}

// Angle sets the rotation angle in radians.
func (b AxisAngleBuilder) Angle(radians float64) AxisAngleBuilder {
	b.angle = radians
	return b
}

// Normalized controls whether Build divides the components by their norm.
func (b AxisAngleBuilder) Normalized(val bool) AxisAngleBuilder {
	b.normalized = val
	return b
}

// Build returns (cos(a/2); axis*sin(a/2)), optionally normalized.
// The axis is used as given; a non-unit axis yields a non-unit quaternion.
func (b AxisAngleBuilder) Build() Quaternion {
	s, c := math.Sincos(b.angle / 2)
	return newQuaternion(c, b.x*s, b.y*s, b.z*s, b.normalized)
}

// WXYZBuilder builds a Quaternion from raw components.
type WXYZBuilder struct {
	w, x, y, z float64
	normalized bool
}

// NewWXYZ starts building a quaternion from raw components.
// All components default to zero and normalization is off.
func NewWXYZ() WXYZBuilder {
	return WXYZBuilder{}
}

// W sets the scalar part.
func (b WXYZBuilder) W(val float64) WXYZBuilder {
	b.w = val
	return b
}

// X sets the i component.
func (b WXYZBuilder) X(val float64) WXYZBuilder {
	b.x = val
	return b
}

// Y sets the j component.
func (b WXYZBuilder) Y(val float64) WXYZBuilder {
	b.y = val
	return b
}

// Z sets the k component.
func (b WXYZBuilder) Z(val float64) WXYZBuilder {
	b.z = val
	return b
}

// Normalized controls whether Build divides the components by their norm.
func (b WXYZBuilder) Normalized(val bool) WXYZBuilder {
	b.normalized = val
	return b
}

// Build computes the norm and returns the finished quaternion.
func (b WXYZBuilder) Build() Quaternion {
	return newQuaternion(b.w, b.x, b.y, b.z, b.normalized)
}

// newQuaternion is the shared finalize step of both builders.
// norm always holds the magnitude of the inputs, even when normalizing.
// A zero norm with normalize set yields NaN components.
func newQuaternion(w, x, y, z float64, normalize bool) Quaternion {
	norm := math.Sqrt(w*w + x*x + y*y + z*z)
	if normalize {
		return Quaternion{w / norm, x / norm, y / norm, z / norm, norm}
	}
	return Quaternion{w, x, y, z, norm}
}

// Identity returns the identity rotation (1; 0, 0, 0).
func Identity() Quaternion {
	return NewWXYZ().W(1).Build()
}

// W returns the scalar part.
func (q Quaternion) W() float64 { return q.w }

// X returns the i component.
func (q Quaternion) X() float64 { return q.x }

// Y returns the j component.
func (q Quaternion) Y() float64 { return q.y }

// Z returns the k component.
func (q Quaternion) Z() float64 { return q.z }

// Norm returns the stored norm. See the Quaternion doc for when it is stale.
func (q Quaternion) Norm() float64 { return q.norm }

// AsVec3 returns the vector part (x, y, z) with a freshly computed magnitude.
func (q Quaternion) AsVec3() Vec3 {
	return NewVec3().
		X(q.x).
		Y(q.y).
		Z(q.z).
		Build()
}

// Conjugate returns (w; -x, -y, -z) with a recomputed norm.
func (q Quaternion) Conjugate() Quaternion {
	return NewWXYZ().
		W(q.w).
		X(-q.x).
		Y(-q.y).
		Z(-q.z).
		Build()
}

// Inverse returns the conjugate divided by norm².
// The result keeps q's norm rather than 1/norm. A zero norm gives NaN or Inf.
func (q Quaternion) Inverse() Quaternion {
	conj := q.Conjugate()
	n2 := q.norm * q.norm
	return Quaternion{
		w:    conj.w / n2,
		x:    conj.x / n2,
		y:    conj.y / n2,
		z:    conj.z / n2,
		norm: q.norm,
	}
}

// Normalize divides every component by the stored norm.
// The returned quaternion still reports the old norm.
func (q Quaternion) Normalize() Quaternion {
	return Quaternion{
		w:    q.w / q.norm,
		x:    q.x / q.norm,
		y:    q.y / q.norm,
		z:    q.z / q.norm,
		norm: q.norm,
	}
}

// Mul returns the Hamilton product q * r.
//
// Multiplication is not commutative: q.Mul(r) applies r first, then q.
// The product is never normalized, even when both operands are unit length.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return NewWXYZ().
		W(q.w*r.w - q.x*r.x - q.y*r.y - q.z*r.z).
		X(q.w*r.x + q.x*r.w + q.y*r.z - q.z*r.y).
		Y(q.w*r.y - q.x*r.z + q.y*r.w + q.z*r.x).
		Z(q.w*r.z + q.x*r.y - q.y*r.x + q.z*r.w).
		Normalized(false).
		Build()
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g; %g, %g, %g)", q.w, q.x, q.y, q.z)
}

package math3d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec3(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), eps, "x of %v", got)
	assert.InDelta(t, want.Y(), got.Y(), eps, "y of %v", got)
	assert.InDelta(t, want.Z(), got.Z(), eps, "z of %v", got)
}

func TestVec3BuilderDefaults(t *testing.T) {
	v := NewVec3().Build()

	assert.Zero(t, v.X())
	assert.Zero(t, v.Y())
	assert.Zero(t, v.Z())
	assert.Zero(t, v.Magnitude())
}

func TestVec3Magnitude(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected float64
	}{
		{"unit x", V3(1, 0, 0), 1},
		{"3-4-5", NewVec3().X(3).Y(4).Build(), 5},
		{"negative", V3(-2, -3, -6), 7},
		{"only z", NewVec3().Z(-0.5).Build(), 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, tc.v.Magnitude(), eps)
		})
	}
}

func TestVec3BuilderIsValue(t *testing.T) {
	base := NewVec3().X(1)
	a := base.Y(2).Build()
	b := base.Y(5).Build()

	assert.Equal(t, 2.0, a.Y())
	assert.Equal(t, 5.0, b.Y())
	assert.Equal(t, 1.0, a.X())
	assert.Equal(t, 1.0, b.X())
}

func TestVec3NaNPropagates(t *testing.T) {
	v := V3(math.NaN(), 1, 1)
	assert.True(t, math.IsNaN(v.Magnitude()))

	v = V3(math.Inf(-1), 0, 0)
	assert.True(t, math.IsInf(v.Magnitude(), 1))
}

func TestVec3RotateDemo(t *testing.T) {
	v := V3(2, 0, 0)
	q := NewAxisAngle().
		Y(1).
		Angle(math.Pi / 4).
		Normalized(true).
		Build()

	got := v.Rotate(q)

	assertVec3(t, V3(math.Sqrt2, 0, -math.Sqrt2), got)
}

func TestVec3RotateQuarterTurns(t *testing.T) {
	tests := []struct {
		name     string
		axis     Vec3
		v        Vec3
		expected Vec3
	}{
		{"x about z", V3(0, 0, 1), V3(1, 0, 0), V3(0, 1, 0)},
		{"y about x", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"z about y", V3(0, 1, 0), V3(0, 0, 1), V3(1, 0, 0)},
		{"on axis", V3(0, 1, 0), V3(0, 3, 0), V3(0, 3, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := NewAxisAngle().
				X(tc.axis.X()).
				Y(tc.axis.Y()).
				Z(tc.axis.Z()).
				Angle(math.Pi / 2).
				Normalized(true).
				Build()
			assertVec3(t, tc.expected, tc.v.Rotate(q))
		})
	}
}

func TestVec3RotateIdentity(t *testing.T) {
	q := NewAxisAngle().X(0.3).Y(0.4).Z(0.5).Angle(0).Build()
	v := V3(1.5, -2.25, 7)

	assertVec3(t, v, v.Rotate(q))
	assertVec3(t, v, v.Rotate(Identity()))
}

func TestVec3RotateRoundTrip(t *testing.T) {
	vectors := []Vec3{
		V3(1, 2, 3),
		V3(-4, 0.5, 9),
		V3(0, 0, -1),
	}
	rotations := []Quaternion{
		NewAxisAngle().X(1).Angle(0.3).Normalized(true).Build(),
		NewAxisAngle().X(1).Y(1).Z(1).Angle(2.1).Normalized(true).Build(),
		NewWXYZ().W(0.2).X(-0.7).Y(0.4).Z(1.1).Normalized(true).Build(),
	}

	for _, v := range vectors {
		for _, q := range rotations {
			// Rebuild so the stored norm matches the unit components.
			unit := NewWXYZ().W(q.W()).X(q.X()).Y(q.Y()).Z(q.Z()).Build()
			back := v.Rotate(unit).Rotate(unit.Inverse())
			assertVec3(t, v, back)
		}
	}
}

func TestVec3RotateRoundTripStaleNorm(t *testing.T) {
	v := V3(1, 2, 3)
	q := NewWXYZ().W(0.2).X(-0.7).Y(0.4).Z(1.1).Normalized(true).Build()

	// Inverse divides by the pre-normalization norm, so the second rotation
	// scales by 1/norm⁴ while the cached magnitude stays put.
	n4 := math.Pow(q.Norm(), 4)
	back := v.Rotate(q).Rotate(q.Inverse())

	assertVec3(t, V3(1/n4, 2/n4, 3/n4), back)
	assert.Equal(t, v.Magnitude(), back.Magnitude())
	assert.InDelta(t, 1.3784, q.Norm(), 1e-4)
}

func TestVec3RotateKeepsMagnitude(t *testing.T) {
	v := V3(3, -1, 2)
	q := NewAxisAngle().X(1).Y(2).Z(-1).Angle(1.2).Normalized(true).Build()

	rotated := v.Rotate(q)

	assert.Equal(t, v.Magnitude(), rotated.Magnitude())
	fresh := V3(rotated.X(), rotated.Y(), rotated.Z())
	assert.InDelta(t, v.Magnitude(), fresh.Magnitude(), eps)
}

func TestVec3RotateNonUnitKeepsStaleMagnitude(t *testing.T) {
	v := V3(1, 0, 0)
	q := NewWXYZ().W(2).Build()

	rotated := v.Rotate(q)

	// q * p * q* scales by |q|^2 = 4 but the cached magnitude is copied.
	assert.InDelta(t, 4.0, rotated.X(), eps)
	assert.Equal(t, 1.0, rotated.Magnitude())
}

func TestVec3String(t *testing.T) {
	assert.Equal(t, "(1, -2.5, 0)", V3(1, -2.5, 0).String())
}

// Package spin integrates spring-damped angular velocity into an orientation
// quaternion.
package spin

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/quaternions/pkg/math3d"
)

// Axis tracks angular velocity around one axis. A harmonica spring pulls the
// velocity back toward zero on every update.
type Axis struct {
	Velocity  float64 // radians per frame
	velSpring harmonica.Spring
	velAccel  float64 // spring velocity of Velocity itself
}

// NewAxis creates an axis at rest with the configured spring.
func NewAxis(cfg Config) Axis {
	return Axis{
		velSpring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
	}
}

// decay moves the velocity one frame closer to zero.
func (a *Axis) decay() {
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// Spinner holds an orientation and the per-axis velocities that drive it.
// It is not safe for concurrent use.
type Spinner struct {
	Pitch, Yaw, Roll Axis

	cfg         Config
	orientation math3d.Quaternion
}

// NewSpinner creates a spinner at the identity orientation.
func NewSpinner(cfg Config) *Spinner {
	s := &Spinner{cfg: cfg}
	s.Reset()
	return s
}

// WithOrientation replaces the current orientation. q should be unit length.
func (s *Spinner) WithOrientation(q math3d.Quaternion) *Spinner {
	s.orientation = q
	return s
}

// Orientation returns the current orientation.
func (s *Spinner) Orientation() math3d.Quaternion {
	return s.orientation
}

// Config returns the settings the spinner was created with.
func (s *Spinner) Config() Config {
	return s.cfg
}

// ApplyImpulse adds angular velocity in radians per frame.
func (s *Spinner) ApplyImpulse(pitch, yaw, roll float64) {
	s.Pitch.Velocity += pitch
	s.Yaw.Velocity += yaw
	s.Roll.Velocity += roll
}

// Update advances one frame: the current velocities rotate the orientation
// about the world X, Y and Z axes, then the springs decay the velocities.
func (s *Spinner) Update() {
	qx := math3d.NewAxisAngle().X(1).Angle(s.Pitch.Velocity).Normalized(true).Build()
	qy := math3d.NewAxisAngle().Y(1).Angle(s.Yaw.Velocity).Normalized(true).Build()
	qz := math3d.NewAxisAngle().Z(1).Angle(s.Roll.Velocity).Normalized(true).Build()

	delta := qx.Mul(qy).Mul(qz)

	// Mul never normalizes; renormalize so Rotate keeps vector lengths.
	s.orientation = delta.Mul(s.orientation).Normalize()

	s.Pitch.decay()
	s.Yaw.decay()
	s.Roll.decay()
}

// Reset stops all motion and returns to the identity orientation.
func (s *Spinner) Reset() {
	s.Pitch = NewAxis(s.cfg)
	s.Yaw = NewAxis(s.cfg)
	s.Roll = NewAxis(s.cfg)
	s.orientation = math3d.Identity()
}

// Rotate returns each vector rotated by the current orientation.
func (s *Spinner) Rotate(vs []math3d.Vec3) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(vs))
	for i, v := range vs {
		out[i] = v.Rotate(s.orientation)
	}
	return out
}

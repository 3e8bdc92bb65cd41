package render

import (
	"math"

	"github.com/taigrr/quaternions/pkg/math3d"
)

// Projector maps world vectors onto the framebuffer orthographically.
// X points right, Y points up and Z is dropped, so the view looks down -Z.
type Projector struct {
	Scale float64 // pixels per world unit
}

// FitProjector returns a projector that fits a vector of length radius inside
// the smaller framebuffer dimension, leaving a one pixel margin.
func FitProjector(fb *Framebuffer, radius float64) Projector {
	half := float64(min(fb.Width, fb.Height))/2 - 1
	if radius <= 0 || half <= 0 {
		return Projector{Scale: 1}
	}
	return Projector{Scale: half / radius}
}

// Project returns the pixel for v with the origin at the framebuffer center.
func (p Projector) Project(fb *Framebuffer, v math3d.Vec3) (x, y int) {
	cx := float64(fb.Width / 2)
	cy := float64(fb.Height / 2)
	x = int(math.Round(cx + v.X()*p.Scale))
	y = int(math.Round(cy - v.Y()*p.Scale))
	return x, y
}

// DrawVector draws a line from the origin to the projected tip of v.
func (fb *Framebuffer) DrawVector(p Projector, v math3d.Vec3, c Color) {
	x0, y0 := p.Project(fb, math3d.V3(0, 0, 0))
	x1, y1 := p.Project(fb, v)
	fb.DrawLine(x0, y0, x1, y1, c)
}

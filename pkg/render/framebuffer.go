// Package render plots rotated vectors into a framebuffer that can be drawn
// to a terminal.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// Framebuffer is a row-major grid of pixels.
// Each terminal cell shows two vertically stacked pixels (see Draw), so a
// framebuffer for an W x H terminal is W x 2H.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA
}

// NewFramebuffer creates a transparent framebuffer.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

func (fb *Framebuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel writes c at (x, y). Writes outside the framebuffer are dropped, so
// callers can draw vectors whose tips leave the view.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if fb.inBounds(x, y) {
		fb.Pixels[y*fb.Width+x] = c
	}
}

// GetPixel returns the color at (x, y), or transparent black outside the
// framebuffer.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if !fb.inBounds(x, y) {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine plots the Bresenham line from (x0, y0) to (x1, y1), both ends
// included.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	dx, sx := span(x0, x1)
	dy, sy := span(y0, y1)
	dy = -dy
	e := dx + dy

	x, y := x0, y0
	for {
		fb.SetPixel(x, y, c)
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// span returns |b-a| and the unit step from a toward b.
func span(a, b int) (dist, step int) {
	if b < a {
		return a - b, -1
	}
	return b - a, 1
}

// ToImage copies the framebuffer into an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for i, p := range fb.Pixels {
		o := i * 4
		img.Pix[o+0] = p.R
		img.Pix[o+1] = p.G
		img.Pix[o+2] = p.B
		img.Pix[o+3] = p.A
	}
	return img
}

// SavePNG writes the framebuffer to path as a PNG.
func (fb *Framebuffer) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close png: %w", cerr)
		}
	}()

	if err := png.Encode(f, fb.ToImage()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

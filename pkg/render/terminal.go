package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock shows the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// Draw implements [uv.Drawable]. Terminal row r shows framebuffer rows 2r
// and 2r+1. Cells past the framebuffer's width are left untouched.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	maxX := min(area.Max.X, fb.Width)
	for row := area.Min.Y; row < area.Max.Y; row++ {
		for col := area.Min.X; col < maxX; col++ {
			scr.SetCell(col, row, &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(fb.GetPixel(col, 2*row)),
					Bg: cellColor(fb.GetPixel(col, 2*row+1)),
				},
			})
		}
	}
}

// cellColor maps a transparent pixel to nil so the terminal default shows.
func cellColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil
	}
	return c
}

// Color is the pixel type of a Framebuffer.
type Color = color.RGBA

// Colors of the basis vectors and the demo vector.
var (
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 255, 0)
	ColorBlue  = RGB(0, 0, 255)
	ColorWhite = RGB(255, 255, 255)
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Shade darkens c for vectors pointing away from the viewer. depth is the
// z component of a unit direction: 0 and above leave c unchanged, -1 halves it.
func Shade(c Color, depth float64) Color {
	if depth >= 0 {
		return c
	}
	f := 1 + max(depth, -1)/2
	return Color{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

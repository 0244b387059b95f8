package eyes

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	// Foreground is used for the lit eye pixels
	Foreground color.RGBA = colornames.White
	// Background clears the screen and draws masks over the eyes
	Background color.RGBA = colornames.Black
)

// Display is the drawing surface the Renderer needs
type Display interface {
	Clear()
	FillRoundRect(x, y, w, h, r int16, c color.RGBA)
	FillTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA)
	Flush() error
}

// Triangle is an overlay drawn in the Background color
type Triangle struct {
	X0, Y0 int
	X1, Y1 int
	X2, Y2 int
}

// Renderer draws the current state of a Pair
type Renderer struct {
	display  Display
	pair     *Pair
	geometry Geometry
}

func NewRenderer(d Display, p *Pair, g Geometry) *Renderer {
	return &Renderer{display: d, pair: p, geometry: g}
}

// Render clears the display and draws both eyes. The frame is only pushed to the device when flush is true,
// which allows callers to composite overlays first
func (r *Renderer) Render(flush bool) error {
	r.display.Clear()
	r.drawEye(r.pair.Left)
	r.drawEye(r.pair.Right)

	if !flush {
		return nil
	}
	return r.display.Flush()
}

// Mask draws the triangle in the Background color without flushing
func (r *Renderer) Mask(t Triangle) {
	r.display.FillTriangle(
		int16(t.X0), int16(t.Y0),
		int16(t.X1), int16(t.Y1),
		int16(t.X2), int16(t.Y2),
		Background,
	)
}

// Flush pushes the frame buffer to the device
func (r *Renderer) Flush() error {
	return r.display.Flush()
}

func (r *Renderer) drawEye(e Eye) {
	b := e.Bounds()
	radius := min(r.geometry.CornerRadius, b.Width/2, b.Height/2)
	r.display.FillRoundRect(int16(b.X), int16(b.Y), int16(b.Width), int16(b.Height), int16(radius), Foreground)
}

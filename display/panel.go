// Package display adapts a TinyGo pixel display to the drawing operations used by the eyes
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/calvinmclean/animahead/eyes"
)

// Canvas is a buffered display like the ssd1306.Device
type Canvas interface {
	drivers.Displayer
	ClearBuffer()
}

// SplashLineHeight is the distance between the baselines of the splash lines
const SplashLineHeight = 16

// Panel draws shapes and text onto a Canvas
type Panel struct {
	canvas Canvas
	font   tinyfont.Fonter
}

var _ eyes.Display = (*Panel)(nil)

func NewPanel(c Canvas) *Panel {
	return &Panel{canvas: c, font: &proggy.TinySZ8pt7b}
}

// Clear clears the frame buffer without touching the device
func (p *Panel) Clear() {
	p.canvas.ClearBuffer()
}

// Flush pushes the frame buffer to the device
func (p *Panel) Flush() error {
	return p.canvas.Display()
}

// FillRoundRect draws a filled rectangle with corners of radius r. Empty rectangles are skipped
func (p *Panel) FillRoundRect(x, y, w, h, r int16, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r = max(0, min(r, w/2, h/2))
	if r == 0 {
		tinydraw.FilledRectangle(p.canvas, x, y, w, h, c)
		return
	}

	// body and side bands
	tinydraw.FilledRectangle(p.canvas, x+r, y, w-2*r, h, c)
	if h-2*r > 0 {
		tinydraw.FilledRectangle(p.canvas, x, y+r, r, h-2*r, c)
		tinydraw.FilledRectangle(p.canvas, x+w-r, y+r, r, h-2*r, c)
	}

	// corners
	left, right := x+r, x+w-r-1
	top, bottom := y+r, y+h-r-1
	corners := [4]struct {
		cx, cy        int16
		isLeft, isTop bool
	}{
		{left, top, true, true},
		{right, top, false, true},
		{left, bottom, true, false},
		{right, bottom, false, false},
	}
	for _, corner := range corners {
		p.fillQuarter(corner.cx, corner.cy, r, corner.isLeft, corner.isTop, c)
	}
}

// fillQuarter fills the quarter circle of radius r around (cx, cy) that points outwards from the rectangle
func (p *Panel) fillQuarter(cx, cy, r int16, left, top bool, c color.RGBA) {
	for dy := int16(0); dy <= r; dy++ {
		for dx := int16(0); dx <= r; dx++ {
			if dx*dx+dy*dy > r*r+r {
				continue
			}
			px, py := cx+dx, cy+dy
			if left {
				px = cx - dx
			}
			if top {
				py = cy - dy
			}
			p.canvas.SetPixel(px, py, c)
		}
	}
}

// FillTriangle draws a filled triangle
func (p *Panel) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA) {
	tinydraw.FilledTriangle(p.canvas, x0, y0, x1, y1, x2, y2, c)
}

// ShowSplash clears the screen, writes one line of text per argument and flushes
func (p *Panel) ShowSplash(lines ...string) error {
	p.canvas.ClearBuffer()
	for i, line := range lines {
		y := int16((i + 1) * SplashLineHeight)
		tinyfont.WriteLine(p.canvas, p.font, 0, y, line, eyes.Foreground)
	}
	return p.canvas.Display()
}

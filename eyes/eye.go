// Package eyes draws and animates a mirrored pair of rounded-rectangle eyes on a small monochrome display
package eyes

// Eye is the geometry of a single eye. The shape is a filled rounded rectangle around the center
type Eye struct {
	CenterX int
	CenterY int
	Width   int
	Height  int
}

// Pair holds both eyes. Every animation changes them together so they stay laterally mirrored
type Pair struct {
	Left  Eye
	Right Eye
}

// Geometry has the display size and the reference pose of the eyes
type Geometry struct {
	ScreenWidth  int
	ScreenHeight int
	EyeWidth     int
	EyeHeight    int
	Gap          int
	CornerRadius int
}

// DefaultGeometry matches a 128x64 SSD1306
var DefaultGeometry = Geometry{
	ScreenWidth:  128,
	ScreenHeight: 64,
	EyeWidth:     40,
	EyeHeight:    40,
	Gap:          10,
	CornerRadius: 10,
}

// ResetToCenter puts both eyes at the reference size, centered on the display with Gap between them.
// It does not draw
func (p *Pair) ResetToCenter(g Geometry) {
	midX := g.ScreenWidth / 2
	midY := g.ScreenHeight / 2
	offset := g.EyeWidth/2 + g.Gap/2

	p.Left = Eye{CenterX: midX - offset, CenterY: midY, Width: g.EyeWidth, Height: g.EyeHeight}
	p.Right = Eye{CenterX: midX + offset, CenterY: midY, Width: g.EyeWidth, Height: g.EyeHeight}
}

// Move shifts both centers by the same amount
func (p *Pair) Move(dx, dy int) {
	p.Left.CenterX += dx
	p.Right.CenterX += dx
	p.Left.CenterY += dy
	p.Right.CenterY += dy
}

// Grow changes the height of both eyes. Negative values close them
func (p *Pair) Grow(dh int) {
	p.Left.Height += dh
	p.Right.Height += dh
}

// SetHeight sets the height of both eyes
func (p *Pair) SetHeight(h int) {
	p.Left.Height = h
	p.Right.Height = h
}

// Rect is the area an Eye covers on screen. Width and Height are never negative
type Rect struct {
	X, Y          int
	Width, Height int
}

// Bounds returns the on-screen rectangle of the eye with the size clamped to zero
func (e Eye) Bounds() Rect {
	w := max(e.Width, 0)
	h := max(e.Height, 0)
	return Rect{
		X:      e.CenterX - w/2,
		Y:      e.CenterY - h/2,
		Width:  w,
		Height: h,
	}
}

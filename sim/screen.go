package sim

import (
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

var (
	litColor  = color.RGBA{R: 0x9f, G: 0xe8, B: 0xff, A: 0xff}
	darkColor = color.RGBA{R: 0x05, G: 0x08, B: 0x10, A: 0xff}
)

// Screen is an in-memory monochrome display. Drawing goes to a back buffer and Display publishes it,
// the same way the SSD1306 only updates on Display
type Screen struct {
	width, height int16

	back []bool

	mtx    sync.Mutex
	front  []bool
	frames int

	onDisplay func()
}

func NewScreen(width, height int16) *Screen {
	n := int(width) * int(height)
	return &Screen{
		width:  width,
		height: height,
		back:   make([]bool, n),
		front:  make([]bool, n),
	}
}

func (s *Screen) Size() (int16, int16) {
	return s.width, s.height
}

// SetPixel lights the pixel for any non-black color. Pixels outside of the screen are ignored
func (s *Screen) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.back[int(y)*int(s.width)+int(x)] = c.R != 0 || c.G != 0 || c.B != 0
}

func (s *Screen) ClearBuffer() {
	clear(s.back)
}

// Display publishes the back buffer
func (s *Screen) Display() error {
	s.mtx.Lock()
	copy(s.front, s.back)
	s.frames++
	onDisplay := s.onDisplay
	s.mtx.Unlock()

	if onDisplay != nil {
		onDisplay()
	}
	return nil
}

// Lit reports whether a published pixel is on
func (s *Screen) Lit(x, y int16) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return false
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.front[int(y)*int(s.width)+int(x)]
}

// Frames returns how many times Display was called
func (s *Screen) Frames() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.frames
}

// pixel maps a point of a w x h output image onto the screen
func (s *Screen) pixel(x, y, w, h int) color.Color {
	if w <= 0 || h <= 0 {
		return darkColor
	}
	sx := int16(x * int(s.width) / w)
	sy := int16(y * int(s.height) / h)
	if s.Lit(sx, sy) {
		return litColor
	}
	return darkColor
}

// Raster creates the fyne object that shows the screen, scaled up by scale
func (s *Screen) Raster(scale float32) *canvas.Raster {
	r := canvas.NewRasterWithPixels(s.pixel)
	r.ScaleMode = canvas.ImageScalePixels
	r.SetMinSize(fyne.NewSize(float32(s.width)*scale, float32(s.height)*scale))

	s.mtx.Lock()
	s.onDisplay = func() { fyne.Do(r.Refresh) }
	s.mtx.Unlock()

	return r
}

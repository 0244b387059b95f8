package eyes

import (
	"image/color"
	"time"
)

type call struct {
	kind  string
	args  []int16
	color color.RGBA
}

// fakeDisplay keeps the draw calls since the last Clear and snapshots them on every Flush
type fakeDisplay struct {
	current  []call
	frames   [][]call
	clears   int
	flushErr error
}

func (d *fakeDisplay) Clear() {
	d.clears++
	d.current = nil
}

func (d *fakeDisplay) FillRoundRect(x, y, w, h, r int16, c color.RGBA) {
	d.current = append(d.current, call{"rect", []int16{x, y, w, h, r}, c})
}

func (d *fakeDisplay) FillTriangle(x0, y0, x1, y1, x2, y2 int16, c color.RGBA) {
	d.current = append(d.current, call{"triangle", []int16{x0, y0, x1, y1, x2, y2}, c})
}

func (d *fakeDisplay) Flush() error {
	frame := make([]call, len(d.current))
	copy(frame, d.current)
	d.frames = append(d.frames, frame)
	return d.flushErr
}

// rects returns the rounded rectangles of a frame
func rects(frame []call) []call {
	var result []call
	for _, c := range frame {
		if c.kind == "rect" {
			result = append(result, c)
		}
	}
	return result
}

// heights returns the rendered height of the left eye for every flushed frame
func (d *fakeDisplay) heights() []int {
	var result []int
	for _, f := range d.frames {
		r := rects(f)
		if len(r) == 0 {
			continue
		}
		result = append(result, int(r[0].args[3]))
	}
	return result
}

type fakeSleeper struct {
	sleeps []time.Duration
}

func (s *fakeSleeper) Sleep(d time.Duration) {
	s.sleeps = append(s.sleeps, d)
}

func (s *fakeSleeper) count(d time.Duration) int {
	n := 0
	for _, v := range s.sleeps {
		if v == d {
			n++
		}
	}
	return n
}

func (s *fakeSleeper) total() time.Duration {
	var t time.Duration
	for _, v := range s.sleeps {
		t += v
	}
	return t
}

func newTestAnimator() (*Animator, *fakeDisplay, *fakeSleeper) {
	d := &fakeDisplay{}
	s := &fakeSleeper{}
	return NewAnimator(d, DefaultGeometry, s, nil), d, s
}

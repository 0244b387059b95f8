package eyes

import (
	"errors"
	"testing"
)

func TestResetToCenter(t *testing.T) {
	tests := []struct {
		name string
		g    Geometry
	}{
		{"Default", DefaultGeometry},
		{"Wide", Geometry{ScreenWidth: 160, ScreenHeight: 80, EyeWidth: 50, EyeHeight: 30, Gap: 20, CornerRadius: 8}},
		{"NoGap", Geometry{ScreenWidth: 128, ScreenHeight: 32, EyeWidth: 24, EyeHeight: 24, Gap: 0, CornerRadius: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pair{Left: Eye{CenterX: 3, Height: -7}}
			p.ResetToCenter(tt.g)

			leftEdge := p.Left.CenterX + p.Left.Width/2 + tt.g.Gap/2
			rightEdge := p.Right.CenterX - p.Right.Width/2 - tt.g.Gap/2
			if leftEdge != rightEdge {
				t.Errorf("eyes are not symmetric: left=%d, right=%d", leftEdge, rightEdge)
			}
			if leftEdge != tt.g.ScreenWidth/2 {
				t.Errorf("expected=%d, got=%d", tt.g.ScreenWidth/2, leftEdge)
			}
			if p.Left.CenterY != tt.g.ScreenHeight/2 || p.Right.CenterY != tt.g.ScreenHeight/2 {
				t.Errorf("expected CenterY=%d, got left=%d right=%d", tt.g.ScreenHeight/2, p.Left.CenterY, p.Right.CenterY)
			}
			if p.Left.Width != tt.g.EyeWidth || p.Left.Height != tt.g.EyeHeight || p.Right != (Eye{p.Right.CenterX, p.Right.CenterY, tt.g.EyeWidth, tt.g.EyeHeight}) {
				t.Errorf("unexpected size: %+v", p)
			}
		})
	}
}

func TestDefaultCenterPositions(t *testing.T) {
	var p Pair
	p.ResetToCenter(DefaultGeometry)

	if p.Left.CenterX != 39 || p.Right.CenterX != 89 {
		t.Errorf("expected centers 39 and 89, got %d and %d", p.Left.CenterX, p.Right.CenterX)
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name     string
		eye      Eye
		expected Rect
	}{
		{"Normal", Eye{CenterX: 39, CenterY: 32, Width: 40, Height: 40}, Rect{X: 19, Y: 12, Width: 40, Height: 40}},
		{"Closed", Eye{CenterX: 39, CenterY: 32, Width: 40, Height: 0}, Rect{X: 19, Y: 32, Width: 40, Height: 0}},
		{"Negative", Eye{CenterX: 39, CenterY: 32, Width: -4, Height: -8}, Rect{X: 39, Y: 32, Width: 0, Height: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.eye.Bounds()
			if got != tt.expected {
				t.Errorf("expected=%+v, got=%+v", tt.expected, got)
			}
		})
	}
}

func TestRender(t *testing.T) {
	d := &fakeDisplay{}
	p := &Pair{}
	p.ResetToCenter(DefaultGeometry)
	before := *p
	r := NewRenderer(d, p, DefaultGeometry)

	t.Run("NoFlush", func(t *testing.T) {
		err := r.Render(false)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(d.frames) != 0 {
			t.Errorf("expected no flushed frames, got %d", len(d.frames))
		}
		if len(d.current) != 2 {
			t.Errorf("expected 2 shapes, got %d", len(d.current))
		}
	})

	t.Run("Flush", func(t *testing.T) {
		err := r.Render(true)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(d.frames) != 1 {
			t.Fatalf("expected 1 flushed frame, got %d", len(d.frames))
		}

		got := rects(d.frames[0])
		expected := [][]int16{
			{19, 12, 40, 40, 10},
			{69, 12, 40, 40, 10},
		}
		for i := range expected {
			for j := range expected[i] {
				if got[i].args[j] != expected[i][j] {
					t.Errorf("eye %d: expected=%v, got=%v", i, expected[i], got[i].args)
					break
				}
			}
			if got[i].color != Foreground {
				t.Errorf("eye %d: expected foreground color, got %v", i, got[i].color)
			}
		}
		if d.clears != 2 {
			t.Errorf("expected every render to clear, got %d clears", d.clears)
		}
	})

	if *p != before {
		t.Errorf("render changed the eyes: before=%+v, after=%+v", before, *p)
	}
}

func TestRenderClampsSize(t *testing.T) {
	d := &fakeDisplay{}
	p := &Pair{}
	p.ResetToCenter(DefaultGeometry)
	p.SetHeight(-6)
	p.Left.Width = 6

	err := NewRenderer(d, p, DefaultGeometry).Render(true)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, c := range rects(d.frames[0]) {
		w, h, radius := c.args[2], c.args[3], c.args[4]
		if w < 0 || h < 0 || radius < 0 {
			t.Errorf("negative geometry rendered: %v", c.args)
		}
		if radius > w/2 || radius > h/2 {
			t.Errorf("radius too large for the shape: %v", c.args)
		}
	}
	if p.Left.Height != -6 {
		t.Errorf("render must not change state, got height %d", p.Left.Height)
	}
}

func TestRenderFlushError(t *testing.T) {
	d := &fakeDisplay{flushErr: errors.New("i2c timeout")}
	p := &Pair{}
	p.ResetToCenter(DefaultGeometry)

	err := NewRenderer(d, p, DefaultGeometry).Render(true)
	if err == nil || err.Error() != "i2c timeout" {
		t.Errorf("expected flush error, got %v", err)
	}
}

package eyes

import (
	"time"

	"github.com/calvinmclean/animahead"
)

// Delays between frames and between the steps of FullRoutine. They control how fast the animations look
const (
	FrameDelay      = 1 * time.Millisecond
	BlinkTwicePause = 150 * time.Millisecond
	HappyFrameDelay = 1 * time.Millisecond
	HappyHold       = 600 * time.Millisecond
	SaccadeHold     = 20 * time.Millisecond
	WakeFrameDelay  = 1 * time.Millisecond
	RoutinePause    = 500 * time.Millisecond
)

const (
	DefaultBlinkStep = 12
	BlinkFrames      = 3

	HappyFrames = 10
	HappyStep   = 2
	// HappyLift is how far the inner corner of the mask sits below the outer corner
	HappyLift = 5

	SaccadeDX    = 8
	SaccadeDY    = 6
	SaccadeBlink = 8

	WakeStart = 2
	WakeStep  = 2
)

// Animator runs short blocking animations on a Pair. Only one animation runs at a time
type Animator struct {
	pair     *Pair
	renderer *Renderer
	geometry Geometry
	sleeper  animahead.Sleeper
	log      *animahead.Logger
}

// NewAnimator creates an Animator with its own Pair, reset to the center pose
func NewAnimator(d Display, g Geometry, sleeper animahead.Sleeper, log *animahead.Logger) *Animator {
	pair := &Pair{}
	pair.ResetToCenter(g)

	return &Animator{
		pair:     pair,
		renderer: NewRenderer(d, pair, g),
		geometry: g,
		sleeper:  sleeper,
		log:      log,
	}
}

// Eyes returns a copy of the current state
func (a *Animator) Eyes() Pair {
	return *a.pair
}

// Center resets the eyes to the reference pose and draws them
func (a *Animator) Center() {
	a.pair.ResetToCenter(a.geometry)
	a.draw(true)
}

// Sleep shows the eyes nearly closed
func (a *Animator) Sleep() {
	a.pair.SetHeight(WakeStart)
	a.draw(true)
}

// BlinkOnce closes the eyes by step pixels per frame over BlinkFrames frames, then opens them the same way.
// Height ends where it started even when it went below zero in between
func (a *Animator) BlinkOnce(step int) {
	for i := 0; i < BlinkFrames; i++ {
		a.pair.Grow(-step)
		a.draw(true)
		a.sleeper.Sleep(FrameDelay)
	}
	for i := 0; i < BlinkFrames; i++ {
		a.pair.Grow(step)
		a.draw(true)
		a.sleeper.Sleep(FrameDelay)
	}
}

// Blink is BlinkOnce with the default step
func (a *Animator) Blink() {
	a.BlinkOnce(DefaultBlinkStep)
}

// BlinkTwice blinks, pauses and blinks again
func (a *Animator) BlinkTwice() {
	a.Blink()
	a.sleeper.Sleep(BlinkTwicePause)
	a.Blink()
}

// HappyEyes centers the eyes and slides a background triangle up from below each one,
// leaving upward-curved "smiling" eyes. Only pixels change, the Pair geometry does not
func (a *Animator) HappyEyes() {
	a.pair.ResetToCenter(a.geometry)
	a.draw(false)

	offset := a.pair.Left.Height / 2
	for i := 0; i < HappyFrames; i++ {
		left, right := happyMasks(*a.pair, offset)
		a.renderer.Mask(left)
		a.renderer.Mask(right)
		offset -= HappyStep

		a.flush()
		a.sleeper.Sleep(HappyFrameDelay)
	}

	a.sleeper.Sleep(HappyHold)
}

// happyMasks returns the mask triangles for both eyes. The right one mirrors the left
func happyMasks(p Pair, offset int) (Triangle, Triangle) {
	l, r := p.Left, p.Right
	left := Triangle{
		X0: l.CenterX - l.Width/2 - 1, Y0: l.CenterY + offset,
		X1: l.CenterX + l.Width/2 + 1, Y1: l.CenterY + HappyLift + offset,
		X2: l.CenterX - l.Width/2 - 1, Y2: l.CenterY + l.Height + offset,
	}
	right := Triangle{
		X0: r.CenterX + r.Width/2 + 1, Y0: r.CenterY + offset,
		X1: r.CenterX - r.Width/2 - 1, Y1: r.CenterY + HappyLift + offset,
		X2: r.CenterX + r.Width/2 + 1, Y2: r.CenterY + r.Height + offset,
	}
	return left, right
}

// Saccade darts both eyes in the given direction with a short squint. The new position is kept
func (a *Animator) Saccade(dxSign, dySign int) {
	a.pair.Move(SaccadeDX*dxSign, SaccadeDY*dySign)
	a.pair.Grow(-SaccadeBlink)
	a.draw(true)
	a.sleeper.Sleep(SaccadeHold)

	a.pair.Grow(SaccadeBlink)
	a.draw(true)
	a.sleeper.Sleep(SaccadeHold)
}

// WakeUp opens the eyes from WakeStart to the reference height, WakeStep pixels per frame
func (a *Animator) WakeUp() {
	for h := WakeStart; h <= a.geometry.EyeHeight; h += WakeStep {
		a.pair.SetHeight(h)
		a.draw(true)
		a.sleeper.Sleep(WakeFrameDelay)
	}
}

// FullRoutine is the complete eye script run at each pan extreme
func (a *Animator) FullRoutine() {
	a.WakeUp()
	a.sleeper.Sleep(RoutinePause)

	a.Center()
	a.sleeper.Sleep(RoutinePause)

	a.Saccade(+1, 0)
	a.sleeper.Sleep(RoutinePause)

	a.Saccade(-1, 0)
	a.sleeper.Sleep(RoutinePause)

	a.BlinkTwice()
	a.sleeper.Sleep(RoutinePause)

	a.HappyEyes()
	a.sleeper.Sleep(RoutinePause)
}

func (a *Animator) draw(flush bool) {
	a.log.Error("rendering eyes", a.renderer.Render(flush))
}

func (a *Animator) flush() {
	a.log.Error("flushing display", a.renderer.Flush())
}

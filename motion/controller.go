// Package motion commands the base (pan) and head (tilt) servos
package motion

import (
	"strconv"

	"github.com/calvinmclean/animahead"
)

// Actuator is a servo that accepts an absolute angle in degrees. It is satisfied by servo.Servo
type Actuator interface {
	SetAngle(int) error
}

// Blinker is run while the head tilts down at the start of a nod
type Blinker interface {
	Blink()
}

// Controller owns the two servos and the last angle commanded to each
type Controller struct {
	base Actuator
	head Actuator
	cfg  Config

	baseAngle int
	headAngle int

	sleeper animahead.Sleeper
	log     *animahead.Logger
}

// New creates a Controller. It does not move the servos
func New(base, head Actuator, cfg Config, sleeper animahead.Sleeper, log *animahead.Logger) *Controller {
	return &Controller{
		base:      base,
		head:      head,
		cfg:       cfg,
		baseAngle: cfg.Center,
		headAngle: cfg.Center,
		sleeper:   sleeper,
		log:       log,
	}
}

// SetBaseAngle turns the base to an absolute angle. There are no bounds checks beyond what the servo enforces
func (c *Controller) SetBaseAngle(deg int) {
	c.log.Debug("base angle=" + strconv.Itoa(deg))

	c.baseAngle = deg
	c.log.Error("setting base angle", c.base.SetAngle(deg))
}

// SetHeadAngle tilts the head to an absolute angle
func (c *Controller) SetHeadAngle(deg int) {
	c.log.Debug("head angle=" + strconv.Itoa(deg))

	c.headAngle = deg
	c.log.Error("setting head angle", c.head.SetAngle(deg))
}

// BaseAngle returns the last commanded base angle
func (c *Controller) BaseAngle() int {
	return c.baseAngle
}

// HeadAngle returns the last commanded head angle
func (c *Controller) HeadAngle() int {
	return c.headAngle
}

// Home centers both servos
func (c *Controller) Home() {
	c.SetBaseAngle(c.cfg.Center)
	c.SetHeadAngle(c.cfg.Center)
}

// Pan turns the base to the extreme on the given side and holds it there
func (c *Controller) Pan(side animahead.Side) {
	c.SetBaseAngle(c.cfg.Center + side.Sign()*c.cfg.BaseDelta)
	c.sleeper.Sleep(c.cfg.PanHold)
}

// Nod tilts the head down while blinking, then up, then back to center. Each position is held for NodDwell.
// The blink runs to completion before the first dwell
func (c *Controller) Nod(b Blinker) {
	c.SetHeadAngle(c.cfg.Center - c.cfg.HeadDelta)
	b.Blink()
	c.sleeper.Sleep(c.cfg.NodDwell)

	c.SetHeadAngle(c.cfg.Center + c.cfg.HeadDelta)
	c.sleeper.Sleep(c.cfg.NodDwell)

	c.SetHeadAngle(c.cfg.Center)
	c.sleeper.Sleep(c.cfg.NodDwell)
}

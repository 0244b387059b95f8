// Package choreography runs the demo script: pan to one side, nod, run the eye routine, then mirror it
package choreography

import (
	"time"

	"github.com/calvinmclean/animahead"
	"github.com/calvinmclean/animahead/motion"
)

// SplashHold is how long the splash text stays up before the loop starts
const SplashHold = 3 * time.Second

// SplashLines is the text shown at startup
var SplashLines = []string{"ANIMATRONIC", "HEAD DEMO"}

// Motion moves the servos
type Motion interface {
	Home()
	Pan(animahead.Side)
	Nod(motion.Blinker)
}

// Eyes runs the eye animations
type Eyes interface {
	motion.Blinker
	Sleep()
	FullRoutine()
}

// Splash shows startup text
type Splash interface {
	ShowSplash(lines ...string) error
}

// Sequencer drives Motion and Eyes in a fixed order. Every call blocks until its motions and animations finish
type Sequencer struct {
	motion  Motion
	eyes    Eyes
	splash  Splash
	sleeper animahead.Sleeper
	log     *animahead.Logger
}

func New(m Motion, e Eyes, s Splash, sleeper animahead.Sleeper, log *animahead.Logger) *Sequencer {
	return &Sequencer{
		motion:  m,
		eyes:    e,
		splash:  s,
		sleeper: sleeper,
		log:     log,
	}
}

// Start centers the servos, holds the splash screen and then shows closed eyes
func (s *Sequencer) Start() {
	s.log.Start()
	s.log.Println("Started...")

	s.motion.Home()
	if s.splash != nil {
		s.log.Error("showing splash", s.splash.ShowSplash(SplashLines...))
	}
	s.sleeper.Sleep(SplashHold)
	s.eyes.Sleep()
}

// Step runs the script for one pan extreme
func (s *Sequencer) Step(side animahead.Side) {
	for stage := animahead.StagePan; ; stage = stage.Next() {
		s.log.Println("stage="+stage.String(), "side="+side.String())

		switch stage {
		case animahead.StagePan:
			s.motion.Pan(side)
		case animahead.StageNod:
			s.motion.Nod(s.eyes)
		case animahead.StageEyes:
			s.eyes.FullRoutine()
			return
		}
	}
}

// Cycle runs the script on the left and then on the right
func (s *Sequencer) Cycle() {
	s.Step(animahead.SideLeft)
	s.Step(animahead.SideRight)
}

// Run shows the splash and then cycles forever
func (s *Sequencer) Run() {
	s.Start()
	for {
		s.Cycle()
	}
}

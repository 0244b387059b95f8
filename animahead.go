package animahead

import "time"

// Side is the pan extreme the base is turned towards
type Side int

const (
	SideUnknown Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		fallthrough
	case SideUnknown:
		return "Unknown"
	}
}

// Sign returns -1 for Left, +1 for Right and 0 otherwise
func (s Side) Sign() int {
	switch s {
	case SideLeft:
		return -1
	case SideRight:
		return +1
	default:
		return 0
	}
}

// ParseSide is the inverse of Side.String
func ParseSide(in string) Side {
	switch in {
	case "Left":
		return SideLeft
	case "Right":
		return SideRight
	default:
		return SideUnknown
	}
}

// Stage is the part of the choreography that is currently running
type Stage int

const (
	StageUnknown Stage = iota
	StagePan
	StageNod
	StageEyes
)

func (s Stage) String() string {
	switch s {
	case StagePan:
		return "Pan"
	case StageNod:
		return "Nod"
	case StageEyes:
		return "Eyes"
	default:
		fallthrough
	case StageUnknown:
		return "Unknown"
	}
}

// Next goes to the stage that follows in the choreography
func (s Stage) Next() Stage {
	if s == StageEyes || s == StageUnknown {
		return StagePan
	}
	return s + 1
}

// ParseStage is the inverse of Stage.String
func ParseStage(in string) Stage {
	switch in {
	case "Pan":
		return StagePan
	case "Nod":
		return StageNod
	case "Eyes":
		return StageEyes
	default:
		return StageUnknown
	}
}

// Sleeper blocks the single thread of control. Every delay in the animations and motions goes through one
type Sleeper interface {
	Sleep(time.Duration)
}

// SleeperFunc adapts a function to a Sleeper
type SleeperFunc func(time.Duration)

func (f SleeperFunc) Sleep(d time.Duration) {
	f(d)
}

// RealSleeper uses the wall clock
var RealSleeper Sleeper = SleeperFunc(time.Sleep)

// Scaled divides every delay by factor, so factor 2 runs twice as fast. A factor <= 0 leaves delays unchanged
func Scaled(s Sleeper, factor float64) Sleeper {
	if factor <= 0 || factor == 1 {
		return s
	}
	return SleeperFunc(func(d time.Duration) {
		s.Sleep(time.Duration(float64(d) / factor))
	})
}

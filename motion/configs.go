package motion

import "time"

// Config has the angles and dwell times of the pan and nod motions
type Config struct {
	// Center is the resting angle of both servos
	Center    int
	BaseDelta int
	HeadDelta int

	// PanHold is how long the base holds after turning to an extreme
	PanHold time.Duration
	// NodDwell is how long the head holds each of the three nod positions
	NodDwell time.Duration
}

var DefaultConfig = Config{
	Center:    90,
	BaseDelta: 45,
	HeadDelta: 20,
	PanHold:   1000 * time.Millisecond,
	NodDwell:  300 * time.Millisecond,
}

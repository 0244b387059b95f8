package sim

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	minAngle = 0
	maxAngle = 180
)

var ErrInvalidAngle = errors.New("angle out of range")

// Servo is a simulated hobby servo with a 0-180 degree range
type Servo struct {
	name string

	mtx      sync.Mutex
	angle    int
	writes   int
	onChange func(int)
}

func NewServo(name string, angle int) *Servo {
	return &Servo{name: name, angle: angle}
}

// SetAngle moves the servo. Angles outside of its range are rejected like a real servo driver does
func (s *Servo) SetAngle(deg int) error {
	if deg < minAngle || deg > maxAngle {
		return fmt.Errorf("%w: %d", ErrInvalidAngle, deg)
	}

	s.mtx.Lock()
	s.angle = deg
	s.writes++
	onChange := s.onChange
	s.mtx.Unlock()

	if onChange != nil {
		onChange(deg)
	}
	return nil
}

func (s *Servo) Angle() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.angle
}

// Writes returns the number of accepted SetAngle calls
func (s *Servo) Writes() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.writes
}

// Widget creates a gauge that follows the servo angle
func (s *Servo) Widget() fyne.CanvasObject {
	bar := widget.NewProgressBar()
	bar.Min = minAngle
	bar.Max = maxAngle
	bar.TextFormatter = func() string {
		return fmt.Sprintf("%.0f°", bar.Value)
	}
	bar.SetValue(float64(s.Angle()))

	s.mtx.Lock()
	s.onChange = func(deg int) {
		fyne.Do(func() {
			bar.SetValue(float64(deg))
		})
	}
	s.mtx.Unlock()

	return container.NewBorder(nil, nil, widget.NewLabel(s.name), nil, bar)
}

package sim

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/calvinmclean/animahead"
	"github.com/calvinmclean/animahead/monitor"
)

// status shows the running time and the stage of the choreography, taken from the log lines
type status struct {
	mtx       sync.Mutex
	startTime time.Time
	stage     animahead.Stage
	side      animahead.Side
	cycle     int

	text *canvas.Text
	stop chan struct{}
}

func newStatus() *status {
	return &status{
		text: canvas.NewText("00:00", nil),
		stop: make(chan struct{}),
	}
}

// Observe updates the stage from a log line
func (s *status) Observe(line string) {
	ev, ok := monitor.ParseLine(line)
	if !ok || ev.Stage == animahead.StageUnknown {
		return
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.startTime.IsZero() {
		s.startTime = time.Now()
	}
	if ev.Stage == animahead.StagePan && ev.Side == animahead.SideLeft {
		s.cycle++
	}
	s.stage = ev.Stage
	s.side = ev.Side
}

// String formats the status like "00:42 #2 Nod Right"
func (s *status) String() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.startTime.IsZero() {
		return "00:00"
	}

	elapsed := time.Since(s.startTime)
	minutes := int(elapsed.Minutes())
	seconds := int(elapsed.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d #%d %s %s", minutes, seconds, s.cycle, s.stage, s.side)
}

func (s *status) Stop() {
	close(s.stop)
}

// Go refreshes the text every second until Stop
func (s *status) Go() {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
			}

			text := s.String()
			fyne.Do(func() {
				s.text.Text = text
				s.text.Refresh()
			})
		}
	}()
}

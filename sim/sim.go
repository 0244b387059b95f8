// Package sim runs the head on the desktop: the eye display is drawn in a window and the servos are gauges
package sim

import (
	"context"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/calvinmclean/animahead"
)

// Config has the simulator window settings
type Config struct {
	// Speed scales the choreography clock, 2 runs twice as fast
	Speed float64
	// Scale is the size of one display pixel on the desktop
	Scale float32

	ScreenWidth  int16
	ScreenHeight int16
}

var DefaultConfig = Config{
	Speed:        1,
	Scale:        4,
	ScreenWidth:  128,
	ScreenHeight: 64,
}

// Devices are the simulated parts handed to the choreography
type Devices struct {
	Screen  *Screen
	Base    *Servo
	Head    *Servo
	Log     io.Writer
	Sleeper animahead.Sleeper
}

// NewDevices creates the simulated hardware. Servos start centered
func NewDevices(cfg Config) Devices {
	return Devices{
		Screen:  NewScreen(cfg.ScreenWidth, cfg.ScreenHeight),
		Base:    NewServo("Base", 90),
		Head:    NewServo("Head", 90),
		Log:     &logView{},
		Sleeper: animahead.Scaled(animahead.RealSleeper, cfg.Speed),
	}
}

// Run opens the simulator window and calls start on its own goroutine. start is expected to block forever like
// the firmware main loop. Run returns when the window is closed or ctx is done
func Run(ctx context.Context, cfg Config, logOut io.Writer, start func(Devices)) {
	application := app.New()
	window := application.NewWindow("Animatronic Head")

	devices := NewDevices(cfg)
	view := devices.Log.(*logView)
	if logOut != nil {
		devices.Log = io.MultiWriter(logOut, view)
	}

	st := newStatus()
	st.Go()
	defer st.Stop()

	contentContainer := container.NewVBox(
		container.NewHBox(
			container.NewPadded(st.text),
			layout.NewSpacer(),
		),
		container.NewCenter(devices.Screen.Raster(cfg.Scale)),
		devices.Base.Widget(),
		devices.Head.Widget(),
		view.accordion(st.Observe),
		widget.NewLabel("Close the window to stop"),
	)

	go start(devices)

	go func() {
		<-ctx.Done()
		fyne.Do(func() {
			application.Quit()
		})
	}()

	window.SetContent(contentContainer)
	window.Resize(fyne.NewSize(float32(cfg.ScreenWidth)*cfg.Scale+40, 0))
	window.ShowAndRun()
}

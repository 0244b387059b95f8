//go:build tinygo

package main

import (
	"machine"
	"os"

	"github.com/calvinmclean/animahead"
	"github.com/calvinmclean/animahead/choreography"
	"github.com/calvinmclean/animahead/display"
	"github.com/calvinmclean/animahead/eyes"
	"github.com/calvinmclean/animahead/firmware/device"
	"github.com/calvinmclean/animahead/motion"
)

func main() {
	baseCfg := device.ServoConfig{
		PWM: machine.PWM0,
		Pin: machine.GP16,
	}
	headCfg := device.ServoConfig{
		PWM: machine.PWM1,
		Pin: machine.GP18,
	}
	displayCfg := device.DisplayConfig{
		Bus:     machine.I2C0,
		SDA:     machine.GP4,
		SCL:     machine.GP5,
		Address: 0x3C,
		Width:   int16(eyes.DefaultGeometry.ScreenWidth),
		Height:  int16(eyes.DefaultGeometry.ScreenHeight),
	}

	d, err := device.New(baseCfg, headCfg, displayCfg)
	if err != nil {
		panic(err)
	}

	// log lines go to the USB serial console
	log := animahead.NewLogger(os.Stdout)

	panel := display.NewPanel(d.Display)
	animator := eyes.NewAnimator(panel, eyes.DefaultGeometry, animahead.RealSleeper, log)
	controller := motion.New(&d.Base, &d.Head, motion.DefaultConfig, animahead.RealSleeper, log)

	choreography.New(controller, animator, panel, animahead.RealSleeper, log).Run()
}

//go:build tinygo

package device

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/servo"
	"tinygo.org/x/drivers/ssd1306"
)

// CenterAngle is where the servos are parked during bring-up
const CenterAngle = 90

// Device has the hardware of the head: the base and head servos and the eye display
type Device struct {
	Base    servo.Servo
	Head    servo.Servo
	Display *ssd1306.Device
}

// New initializes the servos and the display with the provided configs
func New(baseCfg, headCfg ServoConfig, displayCfg DisplayConfig) (Device, error) {
	base, err := newServo(baseCfg)
	if err != nil {
		return Device{}, errors.New("error creating base servo: " + err.Error())
	}

	head, err := newServo(headCfg)
	if err != nil {
		return Device{}, errors.New("error creating head servo: " + err.Error())
	}

	display, err := newDisplay(displayCfg)
	if err != nil {
		return Device{}, errors.New("error creating display: " + err.Error())
	}

	return Device{
		Base:    base,
		Head:    head,
		Display: display,
	}, nil
}

func newServo(cfg ServoConfig) (servo.Servo, error) {
	s, err := servo.New(cfg.PWM, cfg.Pin)
	if err != nil {
		return servo.Servo{}, err
	}

	err = s.SetAngle(CenterAngle)
	if err != nil {
		return servo.Servo{}, errors.New("error setting servo angle: " + err.Error())
	}

	return s, nil
}

func newDisplay(cfg DisplayConfig) (*ssd1306.Device, error) {
	err := cfg.Bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       cfg.SDA,
		SCL:       cfg.SCL,
	})
	if err != nil {
		return nil, errors.New("error configuring i2c: " + err.Error())
	}

	display := ssd1306.NewI2C(cfg.Bus)
	display.Configure(ssd1306.Config{
		Address:  cfg.Address,
		Width:    cfg.Width,
		Height:   cfg.Height,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	display.ClearDisplay()

	return &display, nil
}

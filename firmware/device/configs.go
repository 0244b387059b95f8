//go:build tinygo

package device

import (
	"machine"

	"tinygo.org/x/drivers/servo"
)

// ServoConfig has device-level values for setting up a Servo
type ServoConfig struct {
	Pin machine.Pin
	PWM servo.PWM
}

// DisplayConfig has the I2C wiring and size of the SSD1306 panel
type DisplayConfig struct {
	Bus     *machine.I2C
	SDA     machine.Pin
	SCL     machine.Pin
	Address uint16
	Width   int16
	Height  int16
}

package monitor

import (
	"fmt"
	"os"
	"strconv"
)

const DefaultBaudRate = 115200

// Config has the serial connection settings
type Config struct {
	SerialPort string
	BaudRate   int
}

// NewConfigFromEnv reads SERIAL_PORT and BAUD_RATE. When SERIAL_PORT is not set, the first USB serial port is used
func NewConfigFromEnv() (Config, error) {
	return NewConfig("", 0)
}

// NewConfig reads the environment like NewConfigFromEnv and then applies a non-empty port and a non-zero baud rate on
// top of it. Port detection only happens when neither the argument nor SERIAL_PORT name a port
func NewConfig(port string, baudRate int) (Config, error) {
	cfg := Config{
		SerialPort: os.Getenv("SERIAL_PORT"),
		BaudRate:   DefaultBaudRate,
	}
	if port != "" {
		cfg.SerialPort = port
	}

	if baudRate != 0 {
		cfg.BaudRate = baudRate
	} else if baud := os.Getenv("BAUD_RATE"); baud != "" {
		v, err := strconv.Atoi(baud)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BAUD_RATE %q: %w", baud, err)
		}
		cfg.BaudRate = v
	}

	if cfg.SerialPort == "" {
		ports, err := GetSerialPorts()
		if err != nil {
			return Config{}, fmt.Errorf("error detecting serial port: %w", err)
		}
		cfg.SerialPort = ports[0]
	}

	return cfg, nil
}

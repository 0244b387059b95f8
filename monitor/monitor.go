// Package monitor follows the log output of the head over its USB serial console
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.bug.st/serial"
)

// Monitor is a serial connection to the head
type Monitor struct {
	cfg  Config
	port serial.Port

	closeOnce sync.Once
	closeErr  error
}

// New opens the serial port from cfg
func New(cfg Config) (*Monitor, error) {
	if cfg.SerialPort == "" || cfg.SerialPort == SerialPortNone {
		return nil, errors.New("no serial port configured")
	}
	if cfg.BaudRate == 0 {
		cfg.BaudRate = DefaultBaudRate
	}

	port, err := serial.Open(cfg.SerialPort, &serial.Mode{BaudRate: cfg.BaudRate})
	if err != nil {
		return nil, fmt.Errorf("error opening serial port %q: %w", cfg.SerialPort, err)
	}

	return &Monitor{cfg: cfg, port: port}, nil
}

// NewFromEnv creates a Monitor using NewConfigFromEnv
func NewFromEnv() (*Monitor, error) {
	cfg, err := NewConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// Run writes the annotated log to out until ctx is done or the port is closed
func (m *Monitor) Run(ctx context.Context, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// closing the port unblocks the pending read
	go func() {
		<-ctx.Done()
		m.Close()
	}()

	err := Watch(ctx, m.port, out)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Close closes the serial port. Later calls return the result of the first one
func (m *Monitor) Close() error {
	m.closeOnce.Do(func() {
		m.closeErr = m.port.Close()
	})
	return m.closeErr
}

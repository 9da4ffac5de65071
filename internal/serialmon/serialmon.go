// Package serialmon follows a controller's console over a serial port.
package serialmon

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/itohio/rgbknob/console"
	"github.com/itohio/rgbknob/ui"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// ErrNoPorts is returned when no USB serial port is present.
var ErrNoPorts = errors.New("no usb serial ports found")

// PortInfo describes a serial port.
type PortInfo struct {
	Name string
	USB  bool
	VID  string
	PID  string
}

func (p PortInfo) String() string {
	if !p.USB {
		return p.Name
	}
	return fmt.Sprintf("%s (usb %s:%s)", p.Name, p.VID, p.PID)
}

// Ports lists the serial ports on this machine.
func Ports() ([]PortInfo, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	infos := make([]PortInfo, 0, len(ports))
	for _, p := range ports {
		infos = append(infos, PortInfo{
			Name: p.Name,
			USB:  p.IsUSB,
			VID:  p.VID,
			PID:  p.PID,
		})
	}
	return infos, nil
}

// FirstUSB returns the name of the first USB serial port.
func FirstUSB(ports []PortInfo) (string, error) {
	for _, p := range ports {
		if p.USB {
			return p.Name, nil
		}
	}
	return "", ErrNoPorts
}

// Open opens the serial port at path.
func Open(path string, baud int) (serial.Port, error) {
	slog.Info("Opening serial port", "port", path, "baud", baud)
	p, err := serial.Open(path, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("unable to open serial device %q: %w", path, err)
	}
	return p, nil
}

// Watch calls onState for every state block read from r until r is exhausted.
// Malformed lines are logged and skipped.
func Watch(r io.Reader, onState func(ui.State)) error {
	rd := console.NewReader(r)
	for {
		s, err := rd.Next()
		switch {
		case err == nil:
			onState(s)
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, console.ErrMalformed):
			slog.Warn("Skipping console line", "error", err)
		default:
			return fmt.Errorf("failed to read console: %w", err)
		}
	}
}

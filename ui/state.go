package ui

import (
	"fmt"
	"io"

	"github.com/itohio/rgbknob/dev"
)

// Color indexes Levels.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

var colorNames = [...]string{"red", "green", "blue"}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// Levels holds the red, green and blue levels in that order.
type Levels [3]dev.Level

// State is everything the knob can change.
type State struct {
	Levels    Levels
	FrameRate uint64
}

// DefaultState has every color at full level and a 100 fps frame rate.
func DefaultState() State {
	return State{
		Levels:    Levels{dev.MaxLevel, dev.MaxLevel, dev.MaxLevel},
		FrameRate: FrameRate(dev.MaxLevel),
	}
}

// FrameRate returns the frame rate selected by a knob level.
func FrameRate(l dev.Level) uint64 {
	return (uint64(l) + 1) * 10
}

// Show writes the state to a console as a blank line followed by one line per value.
func (s State) Show(w io.Writer) {
	fmt.Fprintln(w)
	for i, level := range s.Levels {
		fmt.Fprintf(w, "%s: %d\n", Color(i), level)
	}
	fmt.Fprintf(w, "frame rate: %d\n", s.FrameRate)
}

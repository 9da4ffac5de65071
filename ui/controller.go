// Package ui maps the knob and the two buttons onto the RGB levels and frame rate.
package ui

import (
	"io"
	"time"

	"github.com/itohio/rgbknob/dev"
)

// PollInterval is the pause between two knob readings.
const PollInterval = 50 * time.Millisecond

var sleep = time.Sleep

// LevelReader is a knob.
type LevelReader interface {
	Measure() dev.Level
}

// Sink is a value shared with another task, written under exclusive access.
type Sink[T any] interface {
	Update(fn func(*T))
}

// Controller owns the State and publishes every change to the sinks.
//
// Both buttons unpressed: the knob sets the frame rate.
// A: blue. B: green. A and B: red.
type Controller struct {
	knob      LevelReader
	a, b      Button
	frameRate Sink[uint64]
	rgb       Sink[Levels]
	console   io.Writer

	state State
}

func NewController(knob LevelReader, a, b Button, frameRate Sink[uint64], rgb Sink[Levels], console io.Writer) *Controller {
	if console == nil {
		console = io.Discard
	}
	return &Controller{
		knob:      knob,
		a:         a,
		b:         b,
		frameRate: frameRate,
		rgb:       rgb,
		console:   console,
		state:     DefaultState(),
	}
}

// State returns a copy of the current state. Not safe to call while Run is active.
func (c *Controller) State() State {
	return c.state
}

// SetLevel applies level to whatever the buttons currently select.
// It returns the combination that was read and whether the value changed.
// The combination is returned rather than read again by the caller,
// since a button may be released in between.
func (c *Controller) SetLevel(level dev.Level) (Buttons, bool) {
	pressed := Classify(c.a.Pressed(), c.b.Pressed())

	color, ok := pressed.Color()
	if !ok {
		rate := FrameRate(level)
		if c.state.FrameRate == rate {
			return pressed, false
		}
		c.state.FrameRate = rate
		return pressed, true
	}

	if c.state.Levels[color] == level {
		return pressed, false
	}
	c.state.Levels[color] = level
	return pressed, true
}

// Poll reads the knob once, and on a change publishes the new value and
// prints the state.
func (c *Controller) Poll() (Buttons, bool) {
	pressed, changed := c.SetLevel(c.knob.Measure())
	if !changed {
		return pressed, false
	}

	if pressed == Neither {
		rate := c.state.FrameRate
		c.frameRate.Update(func(v *uint64) {
			*v = rate
		})
	} else {
		levels := c.state.Levels
		c.rgb.Update(func(v *Levels) {
			*v = levels
		})
	}
	c.state.Show(c.console)

	return pressed, true
}

// Run polls the knob every PollInterval. It never returns.
func (c *Controller) Run() {
	for {
		c.Poll()
		sleep(PollInterval)
	}
}

// Package sim provides simulated knob and button hardware for running the
// controller on a host.
package sim

import (
	"sync/atomic"

	"github.com/itohio/rgbknob/dev"
)

// Knob is a simulated potentiometer. It satisfies dev.ADC.
type Knob struct {
	raw        atomic.Int32
	calibrated atomic.Bool
}

func NewKnob(raw int16) *Knob {
	k := &Knob{}
	k.Set(raw)
	return k
}

func (k *Knob) Calibrate() {
	k.calibrated.Store(true)
}

// Calibrated reports whether Calibrate has been called.
func (k *Knob) Calibrated() bool {
	return k.calibrated.Load()
}

func (k *Knob) Sample() int16 {
	return int16(k.raw.Load())
}

// Set moves the knob to raw, clamped to the converter range.
func (k *Knob) Set(raw int16) {
	if raw < 0 {
		raw = 0
	}
	k.raw.Store(int32(raw))
}

// Turn moves the knob by delta and returns the new raw reading.
func (k *Knob) Turn(delta int) int16 {
	for {
		old := k.raw.Load()
		v := min(max(int(old)+delta, 0), dev.MaxRaw)
		if k.raw.CompareAndSwap(old, int32(v)) {
			return int16(v)
		}
	}
}

// Button is a simulated push button. It satisfies ui.Button.
type Button struct {
	pressed atomic.Bool
}

func (b *Button) Pressed() bool {
	return b.pressed.Load()
}

func (b *Button) Set(pressed bool) {
	b.pressed.Store(pressed)
}

// Toggle flips the button and returns the new state.
func (b *Button) Toggle() bool {
	for {
		old := b.pressed.Load()
		if b.pressed.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

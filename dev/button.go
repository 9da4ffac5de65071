//go:build tinygo

package dev

import "machine"

// Button is an active low push button.
type Button struct {
	pin machine.Pin
}

func NewButton(pin machine.Pin, mode machine.PinMode) *Button {
	pin.Configure(machine.PinConfig{Mode: mode})
	return &Button{pin: pin}
}

// Pressed reports whether the button is held down.
func (b *Button) Pressed() bool {
	return !b.pin.Get()
}

//go:build rp2040

package config

import "machine"

var (
	Knob = machine.ADC{Pin: machine.ADC0}

	ButtonA    = machine.GP14
	ButtonB    = machine.GP15
	ButtonMode = machine.PinInputPullup

	EncoderA = machine.GP7
	EncoderB = machine.GP6

	DisplayBus = machine.I2C0
)

const (
	// Sample bits handed to the knob transform.
	KnobResolution = 15
	KnobSamples    = 8

	// Read levels from the rotary encoder instead of the potentiometer.
	UseEncoder       = false
	EncoderPerLevel  = 2
	HasDisplay       = true
	DisplayAddress   = 0x3C
	DisplayLineHeight = 9
)

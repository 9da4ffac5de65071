//go:build microbit_v2

package config

import "machine"

var (
	// edge connector P2
	Knob = machine.ADC{Pin: machine.P0_04}

	ButtonA = machine.BUTTONA
	ButtonB = machine.BUTTONB
	// the board has external pull ups on both buttons
	ButtonMode = machine.PinInput

	EncoderA = machine.P0_02
	EncoderB = machine.P0_03

	DisplayBus = machine.I2C0
)

const (
	// SAADC default resolution
	KnobResolution = 14
	KnobSamples    = 4

	UseEncoder       = false
	EncoderPerLevel  = 2
	HasDisplay       = false
	DisplayAddress   = 0x3C
	DisplayLineHeight = 9
)

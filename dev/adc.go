//go:build tinygo

package dev

import (
	"machine"
)

// AnalogInput reads a machine.ADC as raw samples of a fixed resolution.
type AnalogInput struct {
	adc     machine.ADC
	shift   uint8 // machine.ADC.Get is left aligned to 16 bits
	samples uint8 // Number of readings to average per sample
}

// NewAnalogInput creates an input on adc returning resolution bit samples,
// each the average of samples readings.
func NewAnalogInput(adc machine.ADC, resolution uint8, samples uint8) (*AnalogInput, error) {
	if resolution == 0 || resolution > 15 {
		return nil, ErrInvalidResolution
	}
	if samples == 0 {
		samples = 1
	}

	return &AnalogInput{
		adc:     adc,
		shift:   16 - resolution,
		samples: samples,
	}, nil
}

func (a *AnalogInput) Configure() {
	a.adc.Configure(machine.ADCConfig{})
}

func (a *AnalogInput) read(n uint8) uint32 {
	var sum uint32
	for i := uint8(0); i < n; i++ {
		sum += uint32(a.adc.Get())
	}
	return sum / uint32(n)
}

// Sample returns one averaged reading.
func (a *AnalogInput) Sample() int16 {
	return int16(a.read(a.samples) >> a.shift)
}

//go:build tinygo

package dev

import (
	"machine"

	"tinygo.org/x/drivers/encoders"
)

// EncoderKnob reads a quadrature rotary encoder as a Level.
type EncoderKnob struct {
	encoder *encoders.QuadratureDevice
	levels  *EncoderLevels
}

// NewEncoderKnob starts at MaxLevel, matching the controller's default state.
func NewEncoderKnob(a, b machine.Pin, stepsPerLevel int) (*EncoderKnob, error) {
	levels, err := NewEncoderLevels(stepsPerLevel, MaxLevel)
	if err != nil {
		return nil, err
	}

	encoder := encoders.NewQuadratureViaInterrupt(a, b)
	encoder.Configure(encoders.QuadratureConfig{Precision: 1})

	return &EncoderKnob{
		encoder: encoder,
		levels:  levels,
	}, nil
}

func (k *EncoderKnob) Measure() Level {
	return k.levels.Update(k.encoder.Position())
}

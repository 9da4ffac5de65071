package dev

// ADC is a single channel analog input.
type ADC interface {
	// Calibrate blocks until the converter is ready for use.
	Calibrate()
	// Sample blocks until one raw reading is available.
	Sample() int16
}

// Knob reads a potentiometer as a Level.
type Knob struct {
	adc ADC
}

// NewKnob calibrates adc and returns a Knob reading from it.
func NewKnob(adc ADC) *Knob {
	adc.Calibrate()
	return &Knob{adc: adc}
}

// Measure takes one sample and converts it to a Level.
func (k *Knob) Measure() Level {
	return LevelFromRaw(k.adc.Sample())
}

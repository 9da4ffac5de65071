//go:build tinygo && !nrf52833

package dev

// readings thrown away while the converter settles
const warmupReadings = 16

// Calibrate configures the input and discards the first readings.
// The converter has no offset calibration of its own.
func (a *AnalogInput) Calibrate() {
	a.Configure()
	a.read(warmupReadings)
}

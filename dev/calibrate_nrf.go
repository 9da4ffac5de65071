//go:build nrf52833

package dev

import (
	"device/nrf"
	"runtime"
)

// Calibrate configures the input and runs the SAADC offset calibration.
func (a *AnalogInput) Calibrate() {
	a.Configure()

	nrf.SAADC.ENABLE.Set(nrf.SAADC_ENABLE_ENABLE_Enabled)
	nrf.SAADC.EVENTS_CALIBRATEDONE.Set(0)
	nrf.SAADC.TASKS_CALIBRATEOFFSET.Set(1)
	for nrf.SAADC.EVENTS_CALIBRATEDONE.Get() == 0 {
		runtime.Gosched()
	}
	nrf.SAADC.EVENTS_CALIBRATEDONE.Set(0)
	nrf.SAADC.ENABLE.Set(nrf.SAADC_ENABLE_ENABLE_Disabled)
}

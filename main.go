//go:build tinygo

package main

import (
	"machine"
	"os"
	"time"

	"github.com/itohio/rgbknob/config"
	"github.com/itohio/rgbknob/dev"
	"github.com/itohio/rgbknob/shared"
	"github.com/itohio/rgbknob/ui"
)

//go:generate tinygo flash -target=microbit-v2

func configureKnob() ui.LevelReader {
	if config.UseEncoder {
		knob, err := dev.NewEncoderKnob(config.EncoderA, config.EncoderB, config.EncoderPerLevel)
		if err != nil {
			panic("encoder: " + err.Error())
		}
		return knob
	}

	adc, err := dev.NewAnalogInput(config.Knob, config.KnobResolution, config.KnobSamples)
	if err != nil {
		panic("knob: " + err.Error())
	}
	return dev.NewKnob(adc)
}

func main() {
	// give the serial console a moment to attach
	time.Sleep(time.Second)

	machine.InitADC()

	initial := ui.DefaultState()
	frameRate := shared.NewCell(initial.FrameRate)
	rgb := shared.NewCell(initial.Levels)

	if config.HasDisplay {
		go runStatus(frameRate, rgb)
	}

	knob := configureKnob()
	a := dev.NewButton(config.ButtonA, config.ButtonMode)
	b := dev.NewButton(config.ButtonB, config.ButtonMode)

	println("rgbknob ready")
	ui.NewController(knob, a, b, frameRate, rgb, os.Stdout).Run()
}

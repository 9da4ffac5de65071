//go:build tinygo

package main

import (
	"image/color"
	"machine"

	"github.com/itohio/rgbknob/config"
	"github.com/itohio/rgbknob/shared"
	"github.com/itohio/rgbknob/status"
	"github.com/itohio/rgbknob/ui"
	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont/proggy"
)

var white = color.RGBA{255, 255, 255, 255}

// runStatus redraws the OLED whenever either shared value changes.
func runStatus(frameRate *shared.Cell[uint64], rgb *shared.Cell[ui.Levels]) {
	config.DisplayBus.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
	display := ssd1306.NewI2C(config.DisplayBus)
	display.Configure(ssd1306.Config{Width: 128, Height: 64, Address: config.DisplayAddress, VccState: ssd1306.SWITCHCAPVCC})
	display.ClearDisplay()

	screen := status.New(&display, &proggy.TinySZ8pt7b, white, config.DisplayLineHeight)

	changed := make(chan struct{}, 1)
	notify := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	frameRate.AddWatcher(func(uint64) { notify() })
	rgb.AddWatcher(func(ui.Levels) { notify() })
	notify()

	for range changed {
		state := ui.State{Levels: rgb.Load(), FrameRate: frameRate.Load()}
		if err := screen.Draw(state); err != nil {
			println("display: " + err.Error())
		}
	}
}

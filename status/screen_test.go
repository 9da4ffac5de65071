package status_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/itohio/rgbknob/status"
	"github.com/itohio/rgbknob/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/tinyfont/proggy"
)

type fakeDisplay struct {
	w, h     int16
	pixels   map[[2]int16]color.RGBA
	clears   int
	displays int
	err      error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{w: 128, h: 64, pixels: map[[2]int16]color.RGBA{}}
}

func (d *fakeDisplay) Size() (int16, int16) {
	return d.w, d.h
}

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.pixels[[2]int16{x, y}] = c
}

func (d *fakeDisplay) Display() error {
	d.displays++
	return d.err
}

func (d *fakeDisplay) ClearBuffer() {
	d.clears++
	clear(d.pixels)
}

var white = color.RGBA{255, 255, 255, 255}

func TestLines(t *testing.T) {
	lines := status.Lines(ui.State{Levels: ui.Levels{9, 0, 3}, FrameRate: 40})
	assert.Equal(t, []string{
		"R 9 #########",
		"G 0 .........",
		"B 3 ###......",
		"40 fps",
	}, lines)
}

func TestScreenDraw(t *testing.T) {
	d := newFakeDisplay()
	s := status.New(d, &proggy.TinySZ8pt7b, white, 9)

	require.NoError(t, s.Draw(ui.DefaultState()))
	assert.Equal(t, 1, d.clears)
	assert.Equal(t, 1, d.displays)
	assert.NotEmpty(t, d.pixels)
	for p, c := range d.pixels {
		assert.Equal(t, white, c, "pixel %v", p)
	}

	// redrawing starts from a clear buffer
	full := len(d.pixels)
	require.NoError(t, s.Draw(ui.State{FrameRate: 10}))
	assert.Equal(t, 2, d.clears)
	assert.Less(t, len(d.pixels), full)
}

func TestScreenDrawError(t *testing.T) {
	d := newFakeDisplay()
	d.err = errors.New("i2c nack")
	s := status.New(d, &proggy.TinySZ8pt7b, white, 9)

	assert.EqualError(t, s.Draw(ui.DefaultState()), "i2c nack")
}

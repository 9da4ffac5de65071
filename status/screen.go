// Package status draws the controller state on a small display.
package status

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/itohio/rgbknob/dev"
	"github.com/itohio/rgbknob/ui"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Display is a buffered display such as the SSD1306.
type Display interface {
	drivers.Displayer
	ClearBuffer()
}

type Screen struct {
	display    Display
	font       tinyfont.Fonter
	color      color.RGBA
	lineHeight int16
}

func New(display Display, font tinyfont.Fonter, c color.RGBA, lineHeight int16) *Screen {
	return &Screen{
		display:    display,
		font:       font,
		color:      c,
		lineHeight: lineHeight,
	}
}

// Draw replaces the display contents with state.
func (s *Screen) Draw(state ui.State) error {
	s.display.ClearBuffer()
	for i, line := range Lines(state) {
		tinyfont.WriteLine(s.display, s.font, 0, s.lineHeight*int16(i+1), line, s.color)
	}
	return s.display.Display()
}

// Lines renders state as one text line per value.
func Lines(state ui.State) []string {
	lines := make([]string, 0, len(state.Levels)+1)
	for i, level := range state.Levels {
		name := strings.ToUpper(ui.Color(i).String()[:1])
		lines = append(lines, fmt.Sprintf("%s %d %s", name, level, bar(level)))
	}
	return append(lines, fmt.Sprintf("%d fps", state.FrameRate))
}

func bar(l dev.Level) string {
	return strings.Repeat("#", int(l)) + strings.Repeat(".", int(dev.MaxLevel-l))
}

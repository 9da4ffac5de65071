package ui_test

import (
	"testing"

	"github.com/itohio/rgbknob/ui"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, ui.Both, ui.Classify(true, true))
	assert.Equal(t, ui.AOnly, ui.Classify(true, false))
	assert.Equal(t, ui.BOnly, ui.Classify(false, true))
	assert.Equal(t, ui.Neither, ui.Classify(false, false))
}

func TestButtonsTarget(t *testing.T) {
	tests := []struct {
		buttons ui.Buttons
		color   ui.Color
		ok      bool
		target  string
	}{
		{ui.Both, ui.Red, true, "red"},
		{ui.BOnly, ui.Green, true, "green"},
		{ui.AOnly, ui.Blue, true, "blue"},
		{ui.Neither, 0, false, "frame rate"},
	}
	for _, tt := range tests {
		t.Run(tt.buttons.String(), func(t *testing.T) {
			c, ok := tt.buttons.Color()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.color, c)
			assert.Equal(t, tt.target, tt.buttons.Target())
		})
	}
}

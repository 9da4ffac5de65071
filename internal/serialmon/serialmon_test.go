package serialmon_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/itohio/rgbknob/internal/serialmon"
	"github.com/itohio/rgbknob/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstUSB(t *testing.T) {
	ports := []serialmon.PortInfo{
		{Name: "/dev/ttyS0"},
		{Name: "/dev/ttyACM0", USB: true, VID: "0d28", PID: "0204"},
		{Name: "/dev/ttyACM1", USB: true},
	}

	name, err := serialmon.FirstUSB(ports)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyACM0", name)
	assert.Equal(t, "/dev/ttyACM0 (usb 0d28:0204)", ports[1].String())
	assert.Equal(t, "/dev/ttyS0", ports[0].String())

	_, err = serialmon.FirstUSB(ports[:1])
	assert.ErrorIs(t, err, serialmon.ErrNoPorts)
}

func TestWatch(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("rgbknob ready\n")
	ui.State{Levels: ui.Levels{9, 9, 3}, FrameRate: 100}.Show(&sb)
	sb.WriteString("\nred: x\n")
	ui.State{Levels: ui.Levels{9, 9, 3}, FrameRate: 20}.Show(&sb)

	var got []ui.State
	err := serialmon.Watch(strings.NewReader(sb.String()), func(s ui.State) {
		got = append(got, s)
	})
	require.NoError(t, err)
	assert.Equal(t, []ui.State{
		{Levels: ui.Levels{9, 9, 3}, FrameRate: 100},
		{Levels: ui.Levels{9, 9, 3}, FrameRate: 20},
	}, got)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

var _ io.Reader = failingReader{}

func TestWatchReadError(t *testing.T) {
	err := serialmon.Watch(failingReader{}, func(ui.State) {})
	assert.ErrorContains(t, err, "device unplugged")
}

package console_test

import (
	"io"
	"strings"
	"testing"

	"github.com/itohio/rgbknob/console"
	"github.com/itohio/rgbknob/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderShowOutput(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("rgbknob ready\n")
	ui.State{Levels: ui.Levels{9, 9, 3}, FrameRate: 100}.Show(&sb)
	ui.State{Levels: ui.Levels{9, 9, 3}, FrameRate: 30}.Show(&sb)

	r := console.NewReader(strings.NewReader(sb.String()))

	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, ui.State{Levels: ui.Levels{9, 9, 3}, FrameRate: 100}, s)

	s, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(30), s.FrameRate)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderCRLF(t *testing.T) {
	r := console.NewReader(strings.NewReader("\r\nred: 1\r\ngreen: 2\r\nblue: 3\r\nframe rate: 40\r\n"))

	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, ui.State{Levels: ui.Levels{1, 2, 3}, FrameRate: 40}, s)
}

func TestReaderIncompleteBlock(t *testing.T) {
	// the first block lost its color lines, e.g. connected mid block
	in := "blue: 4\nframe rate: 20\n\nred: 0\ngreen: 0\nblue: 0\nframe rate: 10\n"
	r := console.NewReader(strings.NewReader(in))

	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, ui.State{Levels: ui.Levels{0, 0, 0}, FrameRate: 10}, s)
}

func TestReaderMalformed(t *testing.T) {
	in := "\nred: 12\ngreen: 1\nblue: 1\nframe rate: 20\n\nred: 2\ngreen: 1\nblue: 1\nframe rate: 20\n"
	r := console.NewReader(strings.NewReader(in))

	_, err := r.Next()
	require.ErrorIs(t, err, console.ErrMalformed)
	assert.Contains(t, err.Error(), "red: 12")

	s, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, ui.Levels{2, 1, 1}, s.Levels)
}

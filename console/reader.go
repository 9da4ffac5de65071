// Package console reads the state blocks a controller prints to its console.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/itohio/rgbknob/dev"
	"github.com/itohio/rgbknob/ui"
)

// ErrMalformed is returned for a state line whose value cannot be parsed.
var ErrMalformed = errors.New("malformed state line")

const frameRateKey = "frame rate"

// field bits, all set once a block is complete
const (
	seenRed = 1 << iota
	seenGreen
	seenBlue
	seenFrameRate

	seenAll = seenRed | seenGreen | seenBlue | seenFrameRate
)

// Reader extracts states from console output. Lines that are not part of a
// state block are skipped.
type Reader struct {
	sc    *bufio.Scanner
	state ui.State
	seen  uint8
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next complete state. It returns io.EOF once the input is
// exhausted. After an ErrMalformed error reading continues with the next line.
func (r *Reader) Next() (ui.State, error) {
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			r.seen = 0
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		if key == frameRateKey {
			rate, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				r.seen = 0
				return ui.State{}, fmt.Errorf("%w: %q", ErrMalformed, line)
			}
			r.state.FrameRate = rate
			r.seen |= seenFrameRate
			if r.seen == seenAll {
				r.seen = 0
				return r.state, nil
			}
			continue
		}

		color, ok := colorByName(key)
		if !ok {
			continue
		}
		level, err := strconv.ParseUint(value, 10, 8)
		if err != nil || level > uint64(dev.MaxLevel) {
			r.seen = 0
			return ui.State{}, fmt.Errorf("%w: %q", ErrMalformed, line)
		}
		r.state.Levels[color] = dev.Level(level)
		r.seen |= 1 << color
	}

	if err := r.sc.Err(); err != nil {
		return ui.State{}, err
	}
	return ui.State{}, io.EOF
}

func colorByName(name string) (ui.Color, bool) {
	for c := ui.Red; c <= ui.Blue; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

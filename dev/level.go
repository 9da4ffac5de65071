package dev

import "math"

// Levels is the number of discrete knob positions.
const Levels = 10

// MaxLevel is the highest valid Level.
const MaxLevel = Level(Levels - 1)

// Level is a discrete knob position in [0, MaxLevel].
type Level uint8

const (
	// MaxRaw is the largest raw sample, the positive half of a signed 16 bit reading.
	MaxRaw = 0x7fff
	// Raw counts per unit of scaled input.
	rawScale = 10_000.0
)

// knobCurve stretches the scaled input past both ends of the level range,
// so the first and last part of the knob travel saturate at 0 and MaxLevel.
var knobCurve = NewLinearApproximator[float32](Levels+2, -2)

// LevelFromRaw converts a raw analog sample into a Level.
func LevelFromRaw(raw int16) Level {
	// int16 already tops out at MaxRaw
	if raw < 0 {
		raw = 0
	}

	scaled := float32(raw) / rawScale
	v := knobCurve.Convert(scaled)
	if v < 0 {
		v = 0
	}
	if v > float32(MaxLevel) {
		v = float32(MaxLevel)
	}
	return Level(math.Floor(float64(v)))
}

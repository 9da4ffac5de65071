package dev

// EncoderLevels turns an unbounded quadrature position into a Level.
//
// Turning past either end moves the reference point along with the encoder,
// so reversing direction changes the level on the very next step.
type EncoderLevels struct {
	steps int // encoder counts per level
	base  int // position that maps to level 0
}

func NewEncoderLevels(stepsPerLevel int, initial Level) (*EncoderLevels, error) {
	if stepsPerLevel <= 0 {
		return nil, ErrInvalidSteps
	}
	if initial > MaxLevel {
		initial = MaxLevel
	}
	return &EncoderLevels{
		steps: stepsPerLevel,
		base:  -int(initial) * stepsPerLevel,
	}, nil
}

// Update returns the Level for the encoder position.
func (e *EncoderLevels) Update(position int) Level {
	d := position - e.base
	if d < 0 {
		e.base = position
		d = 0
	}
	if top := int(MaxLevel) * e.steps; d > top {
		e.base = position - top
		d = top
	}
	return Level(d / e.steps)
}

package ui

// Button is a digital input reading true while physically pressed.
type Button interface {
	Pressed() bool
}

// Buttons is the combination of the two buttons at one sampling instant.
type Buttons uint8

const (
	Neither Buttons = iota
	AOnly
	BOnly
	Both
)

// Classify checks both buttons before either one alone, so a simultaneous
// press is always Both.
func Classify(a, b bool) Buttons {
	switch {
	case a && b:
		return Both
	case a:
		return AOnly
	case b:
		return BOnly
	default:
		return Neither
	}
}

// Color returns the color the knob controls under this combination.
// It returns false for Neither, which controls the frame rate.
func (b Buttons) Color() (Color, bool) {
	switch b {
	case Both:
		return Red, true
	case BOnly:
		return Green, true
	case AOnly:
		return Blue, true
	default:
		return 0, false
	}
}

// Target names what the knob controls under this combination.
func (b Buttons) Target() string {
	if c, ok := b.Color(); ok {
		return c.String()
	}
	return "frame rate"
}

func (b Buttons) String() string {
	switch b {
	case Neither:
		return "Neither"
	case AOnly:
		return "A"
	case BOnly:
		return "B"
	case Both:
		return "A+B"
	default:
		return "Unknown"
	}
}

package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidResolution = Error("invalid adc resolution")
	ErrInvalidSteps      = Error("invalid encoder steps per level")
)

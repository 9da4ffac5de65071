package dev

type number interface {
	float32 | float64
}

// LinearApproximator maps a value through y = mx + b.
type LinearApproximator[T number] struct {
	m T // Slope
	b T // Y-intercept
}

// NewLinearApproximator creates an approximator directly using slope and intercept
func NewLinearApproximator[T number](slope T, intercept T) LinearApproximator[T] {
	return LinearApproximator[T]{
		m: slope,
		b: intercept,
	}
}

// Convert applies the transform to x.
func (la LinearApproximator[T]) Convert(x T) T {
	return la.m*x + la.b
}

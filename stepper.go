package interp

import "github.com/katalvlaran/interp/knot"

// Stepper walks from 0 to 1 in a fixed number of equidistant steps, both
// ends inclusive. It is the sampling companion of Curve: feed each
// produced position into Curve.At to trace the whole curve.
//
// The reciprocal of the step count is cached at construction, so every
// position costs one multiplication.
type Stepper[R knot.Real] struct {
	current int
	last    int
	inverse R
}

// NewStepper returns a Stepper producing exactly steps positions:
// 0, 1/(steps-1), 2/(steps-1), ..., 1.
//
// Panics: if steps < 2 — a single step has no defined spacing.
func NewStepper[R knot.Real](steps int) Stepper[R] {
	if steps < 2 {
		panic("interp: stepper needs at least 2 steps")
	}

	return Stepper[R]{
		current: 0,
		last:    steps - 1,
		inverse: 1 / R(steps-1),
	}
}

// Next returns the next position and true, or 0 and false once all steps
// are exhausted.
func (s *Stepper[R]) Next() (R, bool) {
	if s.current > s.last {
		return 0, false
	}
	pos := s.inverse * R(s.current)
	s.current++

	return pos, true
}

// Len reports the total number of positions the Stepper produces.
func (s *Stepper[R]) Len() int { return s.last + 1 }

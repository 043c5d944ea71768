package interp

import (
	"errors"

	"github.com/katalvlaran/interp/knot"
)

// Sentinel errors returned by the curve constructors in the linear,
// bezier and bspline packages.
var (
	// ErrTooFewElements is returned when fewer values are given than the
	// interpolation kind needs (two for linear, degree+1 for B-splines).
	ErrTooFewElements = errors.New("interp: too few elements for interpolation")

	// ErrInvalidKnotCount is returned when the number of knots does not
	// match the number of values the interpolation kind dictates.
	ErrInvalidKnotCount = errors.New("interp: invalid number of knots")
)

// Interpolation maps an input to an interpolated output. Implementations
// are immutable after construction and safe for concurrent readers.
type Interpolation[In, Out any] interface {
	// At evaluates the interpolation at in.
	At(in In) Out
}

// Curve is an Interpolation over a real scalar domain. The curve packages
// in this module all produce Curves with domain [first knot, last knot]
// (or [0, 1] where no knots exist, as for Bezier).
type Curve[R knot.Real, Out any] interface {
	Interpolation[R, Out]
}

// Sample evaluates c at n equidistant positions of [0, 1], both ends
// inclusive, and returns the outputs in order.
//
// Complexity: O(n) evaluations.
//
// Panics: if n < 2 — see NewStepper.
func Sample[R knot.Real, Out any](c Curve[R, Out], n int) []Out {
	out := make([]Out, 0, n)
	st := NewStepper[R](n)
	for t, ok := st.Next(); ok; t, ok = st.Next() {
		out = append(out, c.At(t))
	}

	return out
}

package bezier

import (
	"fmt"

	"github.com/katalvlaran/interp"
	"github.com/katalvlaran/interp/knot"
)

// Bezier — polynomial curve over control values, evaluated by
// de Casteljau's algorithm.
//
// Description:
//
//	The control values are held as a proven non-empty generator; the
//	curve's degree is Len()-1. Evaluation repeatedly blends adjacent
//	scratch values with the query position until one value remains:
//
//	  for round := 1..degree:
//	    buf[i] ← (1-t)*buf[i] + t*buf[i+1]
//
// Complexity:
//
//	Evaluation: O(n²) blends, O(n) scratch allocated per call.
//
// Bezier is immutable after construction and safe for concurrent readers.
type Bezier[R knot.Real] struct {
	points knot.NonEmpty[R]
}

// compile-time check: Bezier implements the Curve surface.
var _ interp.Curve[float64, float64] = Bezier[float64]{}

// New builds a Bezier curve from the given control values. A single
// value yields the constant curve; two values reproduce a linear blend.
//
// Errors:
//   - interp.ErrTooFewElements — no control values at all.
//
// Complexity: O(n) copy.
func New[R knot.Real](points []R) (Bezier[R], error) {
	vals := make([]R, len(points))
	copy(vals, points)

	ne, err := knot.NewNonEmpty[R](knot.Slice[R](vals))
	if err != nil {
		return Bezier[R]{}, fmt.Errorf("%w: bezier needs at least 1 control value",
			interp.ErrTooFewElements)
	}

	return Bezier[R]{points: ne}, nil
}

// At evaluates the curve at t by de Casteljau blending. The domain is
// [0, 1]; values outside extrapolate the polynomial.
//
// Complexity: O(n²).
func (b Bezier[R]) At(t R) R {
	n := b.points.Len()
	buf := make([]R, n)
	for i := 0; i < n; i++ {
		buf[i] = b.points.At(i)
	}
	for round := 1; round < n; round++ {
		for i := 0; i < n-round; i++ {
			buf[i] = (1-t)*buf[i] + t*buf[i+1]
		}
	}

	return buf[0]
}

// Degree reports the polynomial degree of the curve: Len()-1.
func (b Bezier[R]) Degree() int { return b.points.Len() - 1 }

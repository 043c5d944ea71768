package bspline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/interp"
	"github.com/katalvlaran/interp/knot"
)

// ErrInvalidDegree is returned when the requested degree is below 1.
var ErrInvalidDegree = errors.New("bspline: degree must be at least 1")

// BSpline — piecewise-polynomial curve of fixed degree over a verified
// knot vector, evaluated by de Boor's algorithm.
//
// Description:
//
//	For a query t, the active knot span is the last interval
//	[knots[k], knots[k+1]) containing t; only control values
//	points[k-p .. k] influence the result. de Boor blends them in place:
//
//	  for r := 1..p:
//	    for j := p..r:
//	      i ← j + k - p
//	      α ← (t - knots[i]) / (knots[i+p-r+1] - knots[i])
//	      d[j] ← (1-α)·d[j-1] + α·d[j]
//
// Span location:
//
//	k = StrictUpperBound(knots, t) - 1, clamped into [p, len(points)-1].
//	StrictUpperBound returns the index of the minimal strictly bigger
//	knot — len(knots) when every knot is <= t — so the clamp pins queries
//	at or beyond the domain edges onto the first/last meaningful span.
//
// Complexity:
//
//	Evaluation: O(log n) span search + O(p²) blends, O(p) scratch.
//
// BSpline is immutable after construction and safe for concurrent readers.
type BSpline[R knot.Real] struct {
	degree int
	points []R
	knots  knot.List[R]
}

// compile-time check: BSpline implements the Curve surface.
var _ interp.Curve[float64, float64] = BSpline[float64]{}

// New builds a B-spline of the given degree from control values and a
// knot vector.
//
// Contracts:
//   - degree >= 1.
//   - len(points) >= degree+1 — one full span must exist.
//   - len(knots) == len(points) + degree + 1.
//   - knots must be non-strictly increasing.
//
// Errors:
//   - ErrInvalidDegree — degree < 1.
//   - interp.ErrTooFewElements — not enough control values.
//   - interp.ErrInvalidKnotCount — knot count contract violated.
//   - knot.ErrUnsortedGenerator — knots decrease somewhere (wrapped).
//
// Complexity: O(n) — one sortedness scan; inputs are copied for
// immutability.
func New[R knot.Real](degree int, points, knots []R) (BSpline[R], error) {
	if degree < 1 {
		return BSpline[R]{}, fmt.Errorf("%w: got %d", ErrInvalidDegree, degree)
	}
	if len(points) < degree+1 {
		return BSpline[R]{}, fmt.Errorf("%w: degree %d needs at least %d control values, got %d",
			interp.ErrTooFewElements, degree, degree+1, len(points))
	}
	if len(knots) != len(points)+degree+1 {
		return BSpline[R]{}, fmt.Errorf("%w: degree %d with %d control values needs %d knots, got %d",
			interp.ErrInvalidKnotCount, degree, len(points), len(points)+degree+1, len(knots))
	}

	kcopy := make([]R, len(knots))
	copy(kcopy, knots)
	ks, err := knot.NewList[R](knot.Slice[R](kcopy))
	if err != nil {
		return BSpline[R]{}, fmt.Errorf("bspline: invalid knot vector: %w", err)
	}

	pcopy := make([]R, len(points))
	copy(pcopy, points)

	return BSpline[R]{degree: degree, points: pcopy, knots: ks}, nil
}

// At evaluates the curve at t. Queries outside the meaningful domain
// [knots[degree], knots[len(points)]] are pinned onto the outermost span.
//
// Complexity: O(log n + p²).
func (b BSpline[R]) At(t R) R {
	p := b.degree

	// Active span: last k with knots[k] <= t, pinned into [p, len(points)-1].
	k := knot.StrictUpperBound[R](b.knots, t) - 1
	if k > len(b.points)-1 {
		k = len(b.points) - 1
	}
	if k < p {
		k = p
	}

	d := make([]R, p+1)
	for j := 0; j <= p; j++ {
		d[j] = b.points[j+k-p]
	}

	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			i := j + k - p
			den := b.knots.At(i+p-r+1) - b.knots.At(i)
			alpha := (t - b.knots.At(i)) / den
			d[j] = (1-alpha)*d[j-1] + alpha*d[j]
		}
	}

	return d[p]
}

// Degree reports the polynomial degree of the curve's pieces.
func (b BSpline[R]) Degree() int { return b.degree }

// Len reports the number of control values.
func (b BSpline[R]) Len() int { return len(b.points) }

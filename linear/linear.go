package linear

import (
	"fmt"

	"github.com/katalvlaran/interp"
	"github.com/katalvlaran/interp/knot"
)

// Linear — piecewise-linear curve over sorted knots.
//
// Description:
//
//	Linear pins one value per knot and blends linearly between the two
//	values whose knots bracket the query. The bracket and blend factor
//	come from the knot core (UpperBorderWithFactor), so duplicate-knot
//	tie-breaking and out-of-range clamping follow its contract exactly.
//
// Algorithm per query:
//  1. lo, hi, factor ← knot.UpperBorderWithFactor(knots, t)
//  2. if clamping, factor ← min(max(factor, 0), 1)
//  3. result ← values[lo] + (values[hi]-values[lo]) * factor
//
// Complexity:
//
//	Evaluation: O(log n), or O(1) with Uniform (equidistant) knots.
//
// Linear is immutable after construction and safe for concurrent readers.
type Linear[R knot.Real] struct {
	values []R
	knots  knot.SortedList[R]
	clamp  bool
}

// compile-time check: Linear implements the Curve surface.
var _ interp.Curve[float64, float64] = Linear[float64]{}

// New builds a linear curve from values pinned at explicit knots.
//
// Contracts:
//   - len(values) >= 2 — a line needs two points.
//   - len(knots) == len(values) — one knot per value.
//   - knots must be non-strictly increasing.
//
// Errors:
//   - interp.ErrTooFewElements — fewer than two values.
//   - interp.ErrInvalidKnotCount — knot/value count mismatch.
//   - knot.ErrUnsortedGenerator — knots decrease somewhere (wrapped).
//
// Complexity: O(n) — one sortedness scan; values are copied for
// immutability.
func New[R knot.Real](values, knots []R, opts ...Option) (Linear[R], error) {
	if len(values) < 2 {
		return Linear[R]{}, fmt.Errorf("%w: linear needs at least 2 values, got %d",
			interp.ErrTooFewElements, len(values))
	}
	if len(knots) != len(values) {
		return Linear[R]{}, fmt.Errorf("%w: linear needs exactly %d knots, got %d",
			interp.ErrInvalidKnotCount, len(values), len(knots))
	}

	ks, err := knot.NewList[R](knot.Slice[R](knots))
	if err != nil {
		return Linear[R]{}, fmt.Errorf("linear: invalid knots: %w", err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vals := make([]R, len(values))
	copy(vals, values)

	return Linear[R]{values: vals, knots: ks, clamp: o.Clamp}, nil
}

// Uniform builds a linear curve over equidistant knots spanning [0, 1].
// Evaluation is O(1): the equidistant knot generator answers border
// queries arithmetically instead of searching.
//
// Errors:
//   - interp.ErrTooFewElements — fewer than two values.
//
// Complexity: O(n) for the value copy, O(1) construction otherwise.
func Uniform[R knot.Real](values []R, opts ...Option) (Linear[R], error) {
	if len(values) < 2 {
		return Linear[R]{}, fmt.Errorf("%w: linear needs at least 2 values, got %d",
			interp.ErrTooFewElements, len(values))
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	vals := make([]R, len(values))
	copy(vals, values)

	return Linear[R]{
		values: vals,
		knots:  knot.NewEquidistantNormalized[R](len(values)),
		clamp:  o.Clamp,
	}, nil
}

// At evaluates the curve at t.
//
// Complexity: O(log n), O(1) for Uniform curves.
func (l Linear[R]) At(t R) R {
	lo, hi, factor := knot.UpperBorderWithFactor(l.knots, t)
	if l.clamp {
		if factor < 0 {
			factor = 0
		} else if factor > 1 {
			factor = 1
		}
	}

	return l.values[lo] + (l.values[hi]-l.values[lo])*factor
}

// Len reports the number of value/knot pairs.
func (l Linear[R]) Len() int { return len(l.values) }

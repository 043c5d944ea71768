// Package knot provides the knot-indexing and bounds-search core used by
// the interpolation packages (linear, bezier, bspline).
//
// 🚀 What is a knot list?
//
//	Interpolation algorithms hold a finite, sorted sequence of scalar
//	positions ("knots") and, for every query t, need the two knots that
//	bracket t — plus, for linear blends, the fractional position of t
//	between them.  This package answers exactly that question, with
//	precisely defined tie-breaking on duplicate runs and clamped
//	behavior for out-of-range queries.
//
// ✨ Key features:
//   - Generator[R] — a finite, indexable, pure view of a knot sequence
//     (adapt any []float64 via Slice, or synthesize one arithmetically)
//   - Capability markers — NonEmptyGenerator / SortedGenerator are sealed
//     interfaces minted only by verified constructors, so bound-finding
//     is only callable on sequences proven non-empty AND sorted
//   - Checked wrappers (NewNonEmpty, NewSorted, NewList) verify their
//     invariant once; *Unchecked constructors are the trusted escape hatch
//   - Equidistant / ConstEquidistant — arithmetic-progression generators
//     that are sorted and non-empty by construction and answer border
//     queries in O(1) instead of O(log n)
//   - Bound-finding — LowerBound, UpperBound, StrictLowerBound,
//     StrictUpperBound, LowerBorder, UpperBorder, Factor and
//     UpperBorderWithFactor over any SortedList
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interp/knot"
//
//	ks, err := knot.NewList(knot.Slice[float64]{0.0, 0.1, 0.2, 0.7, 1.0})
//	if err != nil {
//	  // knot.ErrEmptyGenerator or knot.ErrUnsortedGenerator
//	}
//	lo, hi, f := knot.UpperBorderWithFactor(ks, 0.15) // 1, 2, 0.5
//
// Performance:
//
//   - Bound-finding: O(log n) generic, O(1) on equidistant generators
//   - Wrapper construction: O(1) non-emptiness check, O(n) sortedness check
//   - All operations are pure and allocation-free; generators are immutable
//     after construction and safe for concurrent readers
//
// See example_test.go for runnable scenarios and bench_test.go for the
// generic-versus-equidistant comparison.
package knot

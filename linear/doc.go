// Package linear provides piecewise-linear curve evaluation over sorted
// knots.
//
// 🚀 What is a linear curve?
//
//	Given values v[0..n) pinned at sorted knot positions k[0..n), the
//	curve at position t blends the two values whose knots bracket t:
//
//	  f(t) = v[lo] + (v[hi] - v[lo]) * factor
//
//	where [lo, hi] and factor come from knot.UpperBorderWithFactor.
//
// ✨ Key features:
//   - New — explicit knots, verified sorted & matching the value count
//   - Uniform — equidistant knots over [0, 1]; evaluation becomes O(1)
//     because the knot core answers border queries arithmetically
//   - WithClamp — hold the boundary values outside the knot range instead
//     of extrapolating the outer segments (the default)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interp/linear"
//
//	lin, err := linear.New(
//	  []float64{0, 10, 5},       // values
//	  []float64{0.0, 0.4, 1.0},  // knots
//	  linear.WithClamp(),
//	)
//	if err != nil {
//	  // interp.ErrTooFewElements, interp.ErrInvalidKnotCount,
//	  // or knot.ErrUnsortedGenerator
//	}
//	y := lin.At(0.2) // 5.0
//
// Performance:
//
//   - Evaluation: O(log n) per query, O(1) with Uniform knots
//   - Construction: O(n) (one sortedness scan)
//
// See example_test.go for runnable scenarios.
package linear

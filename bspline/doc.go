// Package bspline provides B-spline curve evaluation by de Boor's
// algorithm over a verified knot vector.
//
// 🚀 What is a B-spline?
//
//	A piecewise-polynomial curve of a chosen degree p, shaped by n
//	control values and governed by a non-strictly increasing knot vector
//	of length n+p+1. Each query only touches the p+1 control values whose
//	basis functions are non-zero on its knot span — found here with
//	knot.StrictUpperBound ("the minimal strictly bigger knot").
//
// ✨ Key features:
//   - New — verifies the count contract len(knots) == len(points)+p+1
//     and the sortedness of the knot vector at construction
//   - De Boor evaluation: repeated affine blending inside the active
//     span, numerically stable, no basis-function recursion
//   - Clamped knot vectors (first/last knot repeated p+1 times) make the
//     curve interpolate its end control values — with them, a B-spline
//     over a single span IS the Bezier curve of the same control values
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interp/bspline"
//
//	bsp, err := bspline.New(
//	  2,                                  // degree
//	  []float64{0, 4, 0, 4},              // control values
//	  []float64{0, 0, 0, 0.5, 1, 1, 1},   // clamped knot vector
//	)
//	if err != nil {
//	  // bspline.ErrInvalidDegree, interp.ErrTooFewElements,
//	  // interp.ErrInvalidKnotCount or knot.ErrUnsortedGenerator
//	}
//	y := bsp.At(0.25)
//
// Performance:
//
//   - Evaluation: O(log n) span search + O(p²) blends, O(p) scratch per
//     call (kept local so curves stay safe for concurrent readers)
//   - Construction: O(n) (one sortedness scan)
//
// See example_test.go for runnable scenarios.
package bspline

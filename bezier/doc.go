// Package bezier provides Bezier curve evaluation by de Casteljau's
// algorithm.
//
// 🚀 What is a Bezier curve?
//
//	A degree n-1 polynomial curve shaped by n control values: it starts
//	at the first value, ends at the last, and is pulled toward (without
//	generally touching) the ones inbetween. The natural domain is [0, 1].
//
// ✨ Key features:
//   - New — any non-empty control sequence; a single value is the
//     constant curve, two values reproduce a linear blend
//   - De Casteljau evaluation: numerically stable repeated linear
//     blending, no binomial coefficients
//   - Inputs outside [0, 1] extrapolate the polynomial (no clamping)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/interp/bezier"
//
//	bez, err := bezier.New([]float64{0, 2, 0})
//	if err != nil {
//	  // interp.ErrTooFewElements
//	}
//	y := bez.At(0.5) // 1.0 — the quadratic 4t(1-t) at its apex
//
// Performance:
//
//   - Evaluation: O(n²) blends per query, O(n) scratch per call (kept
//     local so curves stay safe for concurrent readers)
//   - Construction: O(n) copy
//
// See example_test.go for runnable scenarios.
package bezier

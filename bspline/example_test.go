package bspline_test

import (
	"fmt"

	"github.com/katalvlaran/interp/bspline"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A clamped quadratic with one interior knot at 0.5: two polynomial
//	pieces, end values interpolated, the middle control values only
//	approached.
//
// Complexity: O(log n + p²) per At.
func ExampleNew() {
	bsp, err := bspline.New(
		2,                                // degree
		[]float64{0, 4, 0, 4},            // control values
		[]float64{0, 0, 0, 0.5, 1, 1, 1}, // clamped knot vector
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("%.1f %.1f %.1f %.1f\n", bsp.At(0), bsp.At(0.25), bsp.At(0.5), bsp.At(1))
	// Output:
	// 0.0 2.5 2.0 4.0
}

package knot_test

import (
	"fmt"

	"github.com/katalvlaran/interp/knot"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleUpperBorderWithFactor
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A linear interpolation holds knots [0.0, 0.1, 0.2, 0.7, 1.0] and wants
//	to evaluate at t = 0.15: which two knots bracket t, and how far along
//	the bracket is t?
//
// Use case:
//
//	The returned factor is the blend weight for values[lo] and values[hi].
//
// Complexity: O(log n) for arbitrary sorted knots.
func ExampleUpperBorderWithFactor() {
	ks, err := knot.NewList[float64](knot.Slice[float64]{0.0, 0.1, 0.2, 0.7, 1.0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	lo, hi, factor := knot.UpperBorderWithFactor(ks, 0.15)
	fmt.Printf("bracket=[%d,%d] factor=%.2f\n", lo, hi, factor)
	// Output:
	// bracket=[1,2] factor=0.50
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleUpperBorderWithFactor_equidistant
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Eleven equally spaced knots over [0, 1] (step 0.1), queried at 0.35.
//	No binary search happens here: the bracket and factor fall out of one
//	division.
//
// Complexity: O(1).
func ExampleUpperBorderWithFactor_equidistant() {
	ks := knot.NewEquidistantNormalized[float64](11)

	lo, hi, factor := knot.UpperBorderWithFactor[float64](ks, 0.35)
	fmt.Printf("bracket=[%d,%d] factor=%.2f\n", lo, hi, factor)
	// Output:
	// bracket=[3,4] factor=0.50
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleLowerBound
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A duplicate run [..., 0.7, 0.7, 0.7, ...] queried exactly at 0.7:
//	LowerBound lands on the LAST duplicate, UpperBound on the FIRST —
//	so on exact matches LowerBound may exceed UpperBound.
func ExampleLowerBound() {
	ks, _ := knot.NewList[float64](knot.Slice[float64]{0.0, 0.1, 0.2, 0.7, 0.7, 0.7, 0.8, 1.0})

	fmt.Println("lower:", knot.LowerBound(ks, 0.7))
	fmt.Println("upper:", knot.UpperBound(ks, 0.7))
	// Output:
	// lower: 5
	// upper: 3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewSorted
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Caller-supplied knots are verified once at construction; an unsorted
//	sequence is reported as a recoverable error, not a panic.
func ExampleNewSorted() {
	_, err := knot.NewSorted[float64](knot.Slice[float64]{1.0, 0.5, 2.0})
	fmt.Println(err)
	// Output:
	// knot: generator elements must be non-strictly increasing
}

// Package interp is a modular interpolation toolkit: linear, Bezier and
// B-spline curves over a shared knot-indexing core.
//
// 🚀 What is interp?
//
//	A pure-Go library that splits curve evaluation into two layers:
//		• knot/    — the hard part: a sorted-knot abstraction with
//		  binary-search bound-finding, precise duplicate tie-breaking and
//		  an O(1) fast path for equidistant knots
//		• linear/, bezier/, bspline/ — interpolation formulas that consume
//		  only the narrow bracket-and-factor interface of knot/
//
// ✨ Why choose interp?
//
//   - Verified invariants – knots are proven sorted & non-empty at
//     construction; bound-finding is unreachable for unproven sequences
//   - Deterministic numerics – precisely defined tie-breaking on duplicate
//     knot runs and clamped out-of-range behavior
//   - Pure Go – no cgo, immutable value types, safe for concurrent readers
//   - Fast – O(log n) search in general, O(1) on equidistant knots
//
// The root package carries the evaluation surface shared by the curve
// packages: the Interpolation and Curve interfaces, the Stepper sample
// iterator, the Sample helper and the construction-error sentinels.
//
// Quick taste:
//
//	lin, err := linear.Uniform([]float64{0, 10, 5})
//	if err != nil { ... }
//	ys := interp.Sample[float64, float64](lin, 5)
//
// Dive into the per-package doc.go files for contracts, edge-case policy
// and complexity notes.
package interp

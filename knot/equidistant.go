package knot

import "math"

// Panic messages for equidistant construction and misuse.
const (
	panicEquidistantLen = "knot: equidistant generator needs at least 2 knots"
	panicConstLen       = "knot: const-equidistant generator needs at least 1 knot"
)

// Equidistant generates an arithmetic progression of knots:
//
//	At(i) = offset + step*i
//
// with step > 0 derived from the constructor arguments. It acts like an
// array of n equally spaced knots without storing them, is sorted and
// non-empty by construction — an analytic fact, so it carries both
// capability markers unconditionally — and answers
// UpperBorderWithFactor in O(1).
type Equidistant[R Real] struct {
	n      int
	step   R
	offset R
}

// NewEquidistant returns a generator of n knots equally spaced from
// start to end (both inclusive), with step = (end-start)/(n-1).
//
// Panics: if n < 2 — the step is undefined there.
func NewEquidistant[R Real](start, end R, n int) Equidistant[R] {
	if n < 2 {
		panic(panicEquidistantLen)
	}

	return Equidistant[R]{
		n:      n,
		step:   (end - start) / R(n-1),
		offset: start,
	}
}

// NewEquidistantNormalized returns a generator of n knots equally spaced
// over [0, 1], with step = 1/(n-1).
//
// Panics: if n < 2.
func NewEquidistantNormalized[R Real](n int) Equidistant[R] {
	return NewEquidistant[R](0, 1, n)
}

// At returns offset + step*i.
func (e Equidistant[R]) At(i int) R { return e.offset + e.step*R(i) }

// Len reports the number of knots.
func (e Equidistant[R]) Len() int { return e.n }

// Step returns the common difference between adjacent knots.
func (e Equidistant[R]) Step() R { return e.step }

func (Equidistant[R]) nonEmpty() {}
func (Equidistant[R]) sorted()   {}

// upperBorderWithFactor answers the bracket-and-factor query in O(1):
// the scaled position (q-offset)/step is split into an integer bracket
// start and a fractional factor. The floor is clamped into [0, n-2] and
// then nudged by at most one index against the actual knot values, so
// the bracket is exactly the one the generic binary-search path reports,
// including out-of-range and exact-match queries: the rounding error of
// the division is below one knot spacing, but without the nudge an
// exact-match query could land one bracket early or late.
func (e Equidistant[R]) upperBorderWithFactor(q R) (lo, hi int, factor R) {
	switch e.n {
	case 0:
		panic(panicEmpty)
	case 1:
		panic(panicSingleBorder)
	}
	scaled := (q - e.offset) / e.step
	lo = clampNudge(float64(scaled), e.n, q, e.At)

	return lo, lo + 1, scaled - R(lo)
}

// ConstEquidistant generates n equally spaced knots over [0, 1], storing
// only n and deferring the division to query time:
//
//	At(i) = i / (n-1)
//
// Use it where the generator must be constructible in a constant context
// that forbids floating-point work before first use; everywhere else
// prefer Equidistant, which caches the step eagerly. Like Equidistant it
// is sorted and non-empty by construction and answers
// UpperBorderWithFactor in O(1).
type ConstEquidistant[R Real] struct {
	n int
}

// NewConstEquidistant returns a deferred-arithmetic generator of n knots
// over [0, 1]. No division happens here; a single knot (n == 1) is
// accepted but yields NaN from At, since 0/0 has no defined value —
// border operations on it panic regardless.
//
// Panics: if n == 0.
func NewConstEquidistant[R Real](n int) ConstEquidistant[R] {
	if n == 0 {
		panic(panicConstLen)
	}

	return ConstEquidistant[R]{n: n}
}

// At returns i/(n-1), computed at query time.
func (c ConstEquidistant[R]) At(i int) R { return R(i) / R(c.n-1) }

// Len reports the number of knots.
func (c ConstEquidistant[R]) Len() int { return c.n }

func (ConstEquidistant[R]) nonEmpty() {}
func (ConstEquidistant[R]) sorted()   {}

// upperBorderWithFactor mirrors Equidistant's O(1) formula for the
// normalized range: scaled = q*(n-1), no offset, no cached step.
func (c ConstEquidistant[R]) upperBorderWithFactor(q R) (lo, hi int, factor R) {
	switch c.n {
	case 0:
		panic(panicEmpty)
	case 1:
		panic(panicSingleBorder)
	}
	scaled := q * R(c.n-1)
	lo = clampNudge(float64(scaled), c.n, q, c.At)

	return lo, lo + 1, scaled - R(lo)
}

// clampNudge clamps a floored scaled position into [0, n-2] and corrects
// it by at most one index against the actual knot values, restoring the
// generic UpperBorder invariant: lo is the largest index in [0, n-2]
// whose knot is <= q (0 when q is below every knot). The clamp happens
// before the float-to-int conversion: converting an out-of-range float
// to int is implementation-defined in Go.
func clampNudge[R Real](scaled float64, n int, q R, at func(int) R) int {
	floored := math.Floor(scaled)
	if floored > float64(n-2) {
		floored = float64(n - 2)
	}
	if floored < 0 {
		floored = 0
	}

	lo := int(floored)
	if lo < n-2 && q >= at(lo+1) {
		lo++
	} else if lo > 0 && q < at(lo) {
		lo--
	}

	return lo
}

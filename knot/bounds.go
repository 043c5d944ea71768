package knot

// Bound-finding over a sorted, non-empty knot sequence.
//
// Description:
//
//	Given a SortedList S of n knots and a query q, these operations locate
//	the indices bracketing q. They differ only in tie-breaking on runs of
//	duplicate knots and in their clamping at the edges:
//
//	  LowerBound   — largest i with S[i] <= q, clamped to [0, n-1];
//	                 on an exact duplicate run, the LAST duplicate.
//	  UpperBound   — smallest i with S[i] >= q, clamped to [0, n-1];
//	                 on an exact duplicate run, the FIRST duplicate.
//	  UpperBorder  — bracket [lo, lo+1] biased toward LATER indices on an
//	                 exact interior match.
//	  LowerBorder  — bracket [lo, lo+1] biased toward EARLIER indices.
//	  Strict*Bound — unclamped insertion points (see their doc comments).
//	  Factor       — normalized position of q inside a bracket.
//
// Complexity:
//
//	O(log n) per query via binary search; UpperBorderWithFactor is O(1)
//	on equidistant generators (see equidistant.go).
//
// Panics:
//
//	Every operation panics on an empty sequence. The SortedList capability
//	normally makes that unreachable, but the *Unchecked constructors can
//	bypass it, so each operation still defends against misuse: silently
//	wrong indices would corrupt downstream interpolation results.
const (
	panicEmpty        = "knot: bound-finding on empty sequence"
	panicSingleBorder = "knot: border of single-element sequence is undefined"
)

// LowerBound returns the largest index whose element is smaller than or
// equal to q, clamped to [0, n-1]: n-1 if q >= S[n-1], 0 if q < S[0].
// On a run of duplicates equal to q it returns the last duplicate's index,
// so LowerBound can exceed UpperBound on exact matches.
//
// Complexity: O(log n).
//
// Panics: on an empty sequence.
func LowerBound[R Real](s SortedList[R], q R) int {
	n := s.Len()
	if n == 0 {
		panic(panicEmpty)
	}
	if Last[R](s) <= q {
		return n - 1
	}
	if n == 1 {
		// q below the single element; clamp.
		return 0
	}
	lo, _ := UpperBorder(s, q)

	return lo
}

// UpperBound returns the smallest index whose element is bigger than or
// equal to q, clamped to [0, n-1]: 0 if q <= S[0], n-1 if q > S[n-1].
// On a run of duplicates equal to q it returns the first duplicate's index,
// so UpperBound can fall below LowerBound on exact matches.
//
// Complexity: O(log n).
//
// Panics: on an empty sequence.
func UpperBound[R Real](s SortedList[R], q R) int {
	n := s.Len()
	if n == 0 {
		panic(panicEmpty)
	}
	if First[R](s) >= q {
		return 0
	}
	if n == 1 {
		// q above the single element; clamp.
		return 0
	}
	_, hi := LowerBorder(s, q)

	return hi
}

// StrictUpperBound returns the smallest index whose element is strictly
// bigger than q — the right insertion point, unclamped, in [0, n].
// It returns n when every element is <= q and 0 when every element is > q.
//
// Relation to UpperBorder: for interior queries,
// StrictUpperBound(s, q) == hi of UpperBorder(s, q); they differ only at
// the edges, where UpperBorder clamps its bracket into the sequence.
//
// Complexity: O(log n).
//
// Panics: on an empty sequence.
func StrictUpperBound[R Real](s SortedList[R], q R) int {
	n := s.Len()
	if n == 0 {
		panic(panicEmpty)
	}
	lo, hi := 0, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if q >= s.At(mid) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

// StrictLowerBound returns the largest index whose element is strictly
// smaller than q — unclamped, in [-1, n-1]. It returns -1 when every
// element is >= q and n-1 when every element is < q.
//
// Relation to LowerBorder: for interior queries,
// StrictLowerBound(s, q) == lo of LowerBorder(s, q); they differ only at
// the edges, where LowerBorder clamps its bracket into the sequence.
//
// Complexity: O(log n).
//
// Panics: on an empty sequence.
func StrictLowerBound[R Real](s SortedList[R], q R) int {
	n := s.Len()
	if n == 0 {
		panic(panicEmpty)
	}
	lo, hi := 0, n
	for lo < hi {
		mid := lo + (hi-lo)/2
		if s.At(mid) < q {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo - 1
}

// UpperBorder returns a bracket [lo, hi] with hi == lo+1 such that
// S[lo] <= q <= S[hi] holds as closely as the data allows. On an exact
// interior match inside a duplicate run the bracket is biased toward
// LATER indices (lo lands on the last duplicate). Out-of-range queries
// clamp the bracket to [0, 1] or [n-2, n-1], leaving q outside it.
//
// Complexity: O(log n).
//
// Panics: on an empty sequence, and on a single-element sequence —
// a two-index bracket does not exist there, and inventing one would
// silently misbehave downstream.
func UpperBorder[R Real](s SortedList[R], q R) (lo, hi int) {
	switch s.Len() {
	case 0:
		panic(panicEmpty)
	case 1:
		panic(panicSingleBorder)
	}
	lo, hi = 0, s.Len()-1
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if q < s.At(mid) {
			hi = mid
		} else {
			lo = mid
		}
	}

	return lo, hi
}

// LowerBorder returns a bracket [lo, hi] with hi == lo+1, like
// UpperBorder, but on an exact interior match inside a duplicate run the
// bracket is biased toward EARLIER indices (hi lands on the first
// duplicate).
//
// Complexity: O(log n).
//
// Panics: on an empty sequence and on a single-element sequence.
func LowerBorder[R Real](s SortedList[R], q R) (lo, hi int) {
	switch s.Len() {
	case 0:
		panic(panicEmpty)
	case 1:
		panic(panicSingleBorder)
	}
	lo, hi = 0, s.Len()-1
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if q > s.At(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo, hi
}

// Factor returns the normalized position of q inside the bracket
// [S[lo], S[hi]]: 0 at S[lo], 1 at S[hi] — exactly the blend weight a
// linear interpolation needs. Queries outside the bracket yield factors
// outside [0, 1].
//
// The caller must ensure S[hi] != S[lo]; on violation the division
// produces ±Inf or NaN, which is deliberately not guarded here.
//
// Complexity: O(1).
//
// Panics: on an empty sequence.
func Factor[R Real](s SortedList[R], lo, hi int, q R) R {
	if s.Len() == 0 {
		panic(panicEmpty)
	}
	mn, mx := s.At(lo), s.At(hi)

	return (q - mn) / (mx - mn)
}

// borderWithFactor is the specialization point for UpperBorderWithFactor.
// Generators whose knots follow a known arithmetic law implement it to
// replace the O(log n) search with O(1) arithmetic; the results must stay
// indistinguishable from the generic path for every query, including
// exact matches and out-of-range values.
type borderWithFactor[R Real] interface {
	upperBorderWithFactor(q R) (lo, hi int, factor R)
}

// UpperBorderWithFactor combines UpperBorder and Factor in one call:
// it returns the bracket [lo, lo+1] around q and the normalized position
// of q inside it. Equidistant generators answer in O(1) via a direct
// formula; every other SortedList takes the generic O(log n) path.
//
// Complexity: O(1) equidistant, O(log n) otherwise.
//
// Panics: on an empty sequence and on a single-element sequence.
func UpperBorderWithFactor[R Real](s SortedList[R], q R) (lo, hi int, factor R) {
	if o, ok := s.(borderWithFactor[R]); ok {
		return o.upperBorderWithFactor(q)
	}
	lo, hi = UpperBorder(s, q)

	return lo, hi, Factor(s, lo, hi, q)
}

package knot

// NonEmpty wraps a Generator proven (or trusted) to hold at least one
// element. It is a transparent pass-through for At/Len and adds no
// runtime overhead beyond the wrapped generator itself.
type NonEmpty[R Real] struct {
	g Generator[R]
}

// NewNonEmpty verifies g.Len() >= 1 and wraps g.
//
// Errors:
//   - ErrEmptyGenerator — g holds no elements; no wrapper is produced.
//
// Complexity: O(1).
func NewNonEmpty[R Real](g Generator[R]) (NonEmpty[R], error) {
	if g.Len() == 0 {
		return NonEmpty[R]{}, ErrEmptyGenerator
	}

	return NonEmpty[R]{g: g}, nil
}

// NewNonEmptyUnchecked wraps g without verifying non-emptiness.
//
// The caller guarantees g.Len() >= 1. Violating that guarantee is
// memory-safe but any capability-requiring operation performed on the
// wrapper will panic rather than return a value.
func NewNonEmptyUnchecked[R Real](g Generator[R]) NonEmpty[R] {
	return NonEmpty[R]{g: g}
}

// At returns the element at index i of the wrapped generator.
func (w NonEmpty[R]) At(i int) R { return w.g.At(i) }

// Len reports the number of elements of the wrapped generator.
func (w NonEmpty[R]) Len() int { return w.g.Len() }

// Unwrap returns the wrapped generator.
func (w NonEmpty[R]) Unwrap() Generator[R] { return w.g }

func (NonEmpty[R]) nonEmpty() {}

// Sorted wraps a Generator proven (or trusted) to be non-strictly
// increasing. Like NonEmpty, it is a transparent pass-through.
type Sorted[R Real] struct {
	g Generator[R]
}

// NewSorted verifies that g's elements are non-strictly increasing and
// wraps g. An empty generator is vacuously sorted and is accepted.
//
// Errors:
//   - ErrUnsortedGenerator — some adjacent pair decreases; no wrapper is
//     produced.
//
// Complexity: O(n) — one adjacent-pair scan.
func NewSorted[R Real](g Generator[R]) (Sorted[R], error) {
	if g.Len() == 0 {
		return Sorted[R]{g: g}, nil
	}
	last := g.At(0)
	for i := 1; i < g.Len(); i++ {
		current := g.At(i)
		if last > current {
			return Sorted[R]{}, ErrUnsortedGenerator
		}
		last = current
	}

	return Sorted[R]{g: g}, nil
}

// NewSortedUnchecked wraps g without verifying sortedness.
//
// The caller guarantees non-strictly increasing elements. Violating that
// guarantee is memory-safe but bound-finding on the wrapper yields
// unspecified indices or panics.
func NewSortedUnchecked[R Real](g Generator[R]) Sorted[R] {
	return Sorted[R]{g: g}
}

// At returns the element at index i of the wrapped generator.
func (w Sorted[R]) At(i int) R { return w.g.At(i) }

// Len reports the number of elements of the wrapped generator.
func (w Sorted[R]) Len() int { return w.g.Len() }

// Unwrap returns the wrapped generator.
func (w Sorted[R]) Unwrap() Generator[R] { return w.g }

func (Sorted[R]) sorted() {}

// List wraps a Generator proven (or trusted) to be both non-empty and
// sorted — the combination every bound-finding operation requires.
//
// Go cannot grant a capability to a wrapper conditionally on the wrapped
// type already carrying the other one, so instead of stacking NonEmpty and
// Sorted, List verifies both invariants in a single checked constructor.
type List[R Real] struct {
	g Generator[R]
}

// NewList verifies both invariants and wraps g as a SortedList.
//
// Errors:
//   - ErrEmptyGenerator — g holds no elements.
//   - ErrUnsortedGenerator — some adjacent pair decreases.
//
// Complexity: O(n).
func NewList[R Real](g Generator[R]) (List[R], error) {
	if g.Len() == 0 {
		return List[R]{}, ErrEmptyGenerator
	}
	if _, err := NewSorted(g); err != nil {
		return List[R]{}, err
	}

	return List[R]{g: g}, nil
}

// NewListUnchecked wraps g without verifying either invariant.
//
// The caller guarantees g is non-empty and non-strictly increasing.
// Violating the guarantee is memory-safe; bound-finding will panic on an
// empty sequence and yields unspecified indices on an unsorted one.
func NewListUnchecked[R Real](g Generator[R]) List[R] {
	return List[R]{g: g}
}

// At returns the element at index i of the wrapped generator.
func (w List[R]) At(i int) R { return w.g.At(i) }

// Len reports the number of elements of the wrapped generator.
func (w List[R]) Len() int { return w.g.Len() }

// Unwrap returns the wrapped generator.
func (w List[R]) Unwrap() Generator[R] { return w.g }

func (List[R]) nonEmpty() {}
func (List[R]) sorted()   {}

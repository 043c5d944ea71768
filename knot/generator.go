package knot

import "errors"

// Sentinel errors for checked wrapper construction.
var (
	// ErrEmptyGenerator is returned when a non-emptiness check fails.
	ErrEmptyGenerator = errors.New("knot: generator must be non-empty")

	// ErrUnsortedGenerator is returned when a sortedness check fails.
	ErrUnsortedGenerator = errors.New("knot: generator elements must be non-strictly increasing")
)

// Real is the scalar constraint for knot positions and blend factors.
type Real interface {
	~float32 | ~float64
}

// Generator is a finite, indexable, immutable sequence of scalars.
//
// Contracts:
//   - Len is constant for the generator's lifetime.
//   - At is pure and deterministic: calling it twice with the same index
//     yields the same value.
//   - At is defined exactly for 0 <= i < Len(); an out-of-range index is a
//     programming error, not a recoverable condition, and implementations
//     are expected to panic on it.
type Generator[R Real] interface {
	// At returns the element at index i.
	At(i int) R
	// Len reports the number of elements.
	Len() int
}

// NonEmptyGenerator marks a Generator proven to hold at least one element.
//
// The marker method is unexported: only this package's verified
// constructors (NewNonEmpty, NewList, the equidistant generators) and the
// documented *Unchecked escape hatches can mint a value of this type.
type NonEmptyGenerator[R Real] interface {
	Generator[R]
	nonEmpty()
}

// SortedGenerator marks a Generator whose elements are proven
// non-strictly increasing: At(i) <= At(i+1) for every valid i.
// Duplicate runs of equal adjacent elements are explicitly permitted.
//
// Sealed the same way as NonEmptyGenerator.
type SortedGenerator[R Real] interface {
	Generator[R]
	sorted()
}

// SortedList is a Generator carrying both capability markers.
// Every bound-finding operation in this package requires a SortedList:
// the type system makes bound-finding unreachable for sequences that were
// never verified (or trusted) to be sorted and non-empty.
type SortedList[R Real] interface {
	Generator[R]
	nonEmpty()
	sorted()
}

// First returns the first element of a non-empty generator.
func First[R Real](g NonEmptyGenerator[R]) R {
	return g.At(0)
}

// Last returns the last element of a non-empty generator.
func Last[R Real](g NonEmptyGenerator[R]) R {
	return g.At(g.Len() - 1)
}

// Slice adapts a plain slice to the Generator interface.
// It carries no capability markers; pass it through NewNonEmpty,
// NewSorted or NewList to prove the corresponding invariants.
type Slice[R Real] []R

// At returns s[i].
func (s Slice[R]) At(i int) R { return s[i] }

// Len returns len(s).
func (s Slice[R]) Len() int { return len(s) }

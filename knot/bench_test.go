package knot_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/interp/knot"
)

// benchmarkBorderWithFactor drives UpperBorderWithFactor over a fixed set
// of pre-drawn queries so the generic and equidistant paths see identical
// work per iteration.
func benchmarkBorderWithFactor(b *testing.B, s knot.SortedList[float64]) {
	rng := rand.New(rand.NewSource(99))
	queries := make([]float64, 1024)
	span := s.At(s.Len()-1) - s.At(0)
	for i := range queries {
		queries[i] = s.At(0) + rng.Float64()*span
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := queries[i&1023]
		_, _, _ = knot.UpperBorderWithFactor(s, q)
	}
}

// BenchmarkUpperBorderWithFactor_Generic1k measures the O(log n) binary
// search over 1000 arbitrary sorted knots.
func BenchmarkUpperBorderWithFactor_Generic1k(b *testing.B) {
	ks := make(knot.Slice[float64], 1000)
	v := 0.0
	for i := range ks {
		v += float64(i%7) * 0.01
		ks[i] = v
	}
	benchmarkBorderWithFactor(b, knot.NewListUnchecked[float64](ks))
}

// BenchmarkUpperBorderWithFactor_Equidistant1k measures the O(1) override
// on 1000 equidistant knots — same contract, no search.
func BenchmarkUpperBorderWithFactor_Equidistant1k(b *testing.B) {
	benchmarkBorderWithFactor(b, knot.NewEquidistant(0.0, 1.0, 1000))
}

// BenchmarkUpperBorderWithFactor_ConstEquidistant1k measures the deferred
// division form, which pays one extra multiplication per query.
func BenchmarkUpperBorderWithFactor_ConstEquidistant1k(b *testing.B) {
	benchmarkBorderWithFactor(b, knot.NewConstEquidistant[float64](1000))
}

// BenchmarkLowerBound_Generic1k measures the single-index operation on
// the same 1000-knot generic sequence.
func BenchmarkLowerBound_Generic1k(b *testing.B) {
	ks := make(knot.Slice[float64], 1000)
	for i := range ks {
		ks[i] = float64(i) * 0.5
	}
	s := knot.NewListUnchecked[float64](ks)

	rng := rand.New(rand.NewSource(99))
	queries := make([]float64, 1024)
	for i := range queries {
		queries[i] = rng.Float64() * 500
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = knot.LowerBound(s, queries[i&1023])
	}
}

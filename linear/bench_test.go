package linear_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/interp/linear"
)

// benchmarkAt evaluates a prepared curve over a fixed query set.
func benchmarkAt(b *testing.B, lin linear.Linear[float64]) {
	rng := rand.New(rand.NewSource(5))
	queries := make([]float64, 1024)
	for i := range queries {
		queries[i] = rng.Float64()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lin.At(queries[i&1023])
	}
}

// BenchmarkLinear_Explicit1k measures evaluation over 1000 explicit
// knots: one O(log n) border search per query.
func BenchmarkLinear_Explicit1k(b *testing.B) {
	values := make([]float64, 1000)
	knots := make([]float64, 1000)
	for i := range values {
		values[i] = float64(i % 13)
		knots[i] = float64(i) / 999
	}
	lin, err := linear.New(values, knots)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	benchmarkAt(b, lin)
}

// BenchmarkLinear_Uniform1k measures evaluation over 1000 equidistant
// knots: the O(1) arithmetic fast path.
func BenchmarkLinear_Uniform1k(b *testing.B) {
	values := make([]float64, 1000)
	for i := range values {
		values[i] = float64(i % 13)
	}
	lin, err := linear.Uniform(values)
	if err != nil {
		b.Fatalf("Uniform failed: %v", err)
	}
	benchmarkAt(b, lin)
}

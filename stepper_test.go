package interp_test

import (
	"testing"

	"github.com/katalvlaran/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStepper_ElevenSteps verifies the canonical sampling sequence:
// eleven steps walk 0.0, 0.1, ..., 1.0 with both ends inclusive.
func TestStepper_ElevenSteps(t *testing.T) {
	st := interp.NewStepper[float64](11)
	require.Equal(t, 11, st.Len())

	want := []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	for i, w := range want {
		pos, ok := st.Next()
		require.True(t, ok, "step %d must exist", i)
		assert.InDelta(t, w, pos, 1e-12, "step %d", i)
	}

	_, ok := st.Next()
	assert.False(t, ok, "stepper must be exhausted after Len() steps")
}

// TestStepper_TwoSteps verifies the minimal stepper: exactly 0 and 1.
func TestStepper_TwoSteps(t *testing.T) {
	st := interp.NewStepper[float64](2)

	pos, ok := st.Next()
	require.True(t, ok)
	assert.Equal(t, 0.0, pos)

	pos, ok = st.Next()
	require.True(t, ok)
	assert.Equal(t, 1.0, pos)

	_, ok = st.Next()
	assert.False(t, ok)
}

// TestStepper_PanicsBelowTwo pins the degenerate-count policy.
func TestStepper_PanicsBelowTwo(t *testing.T) {
	assert.Panics(t, func() { interp.NewStepper[float64](1) })
	assert.Panics(t, func() { interp.NewStepper[float64](0) })
}

// doubler is a trivial curve for exercising Sample.
type doubler struct{}

func (doubler) At(t float64) float64 { return 2 * t }

// TestSample_TrivialCurve verifies that Sample feeds the stepper's
// positions through the curve in order.
func TestSample_TrivialCurve(t *testing.T) {
	got := interp.Sample[float64, float64](doubler{}, 5)

	require.Len(t, got, 5)
	for i, w := range []float64{0.0, 0.5, 1.0, 1.5, 2.0} {
		assert.InDelta(t, w, got[i], 1e-12, "sample %d", i)
	}
}

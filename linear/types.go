// Package linear defines options for piecewise-linear curve construction.
package linear

// Option configures a linear curve via functional arguments.
type Option func(*Options)

// Options holds the tunable behavior of a linear curve.
//
// Fields:
//   - Clamp — if true, queries outside the knot range return the boundary
//     value (the blend factor is clamped into [0, 1]). If false, the outer
//     segments are extended: factors outside [0, 1] extrapolate linearly.
type Options struct {
	Clamp bool
}

// DefaultOptions returns the default behavior: linear extrapolation
// beyond the knot range (Clamp == false).
func DefaultOptions() Options {
	return Options{Clamp: false}
}

// WithClamp holds the first/last value for queries outside the knot range.
func WithClamp() Option {
	return func(o *Options) {
		o.Clamp = true
	}
}

// WithExtrapolation extends the outer segments linearly beyond the knot
// range. This is the default; the option exists to state it explicitly.
func WithExtrapolation() Option {
	return func(o *Options) {
		o.Clamp = false
	}
}

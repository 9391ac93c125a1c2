package anderson

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in DefaultOptions.
const (
	// DefaultHistorySize is the window of past iterates retained.
	// Larger windows can accelerate more but cost memory and make the
	// Gram solve harder to regularize.
	DefaultHistorySize = 5

	// DefaultBeta is the momentum weight: 0 mixes raw iterates only,
	// 1 mixes one-step-updated iterates (the classical Anderson form).
	DefaultBeta = 1.0

	// DefaultRidge is the Tikhonov regularization added to the Gram
	// diagonal before solving for mixing coefficients.
	DefaultRidge = 1e-5
)

// Options configures Anderson acceleration.
//   - HistorySize: number of residuals retained (window size m), ≥ 1.
//   - Beta: momentum weight, typically in [0, 1]; values outside the
//     range are accepted (over-relaxation) but rarely useful.
//   - Ridge: Tikhonov regularization strength, > 0. Increase it if the
//     solve starts returning NaN.
//   - Verbose: print the error signal on every Update via fmt.Printf.
//     Purely diagnostic; has no effect on numerics.
type Options struct {
	HistorySize int
	Beta        float64
	Ridge       float64
	Verbose     bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		HistorySize: DefaultHistorySize,
		Beta:        DefaultBeta,
		Ridge:       DefaultRidge,
	}
}

// validate enforces Options invariants at construction time.
// Errors: ErrBadHistorySize, ErrBadRidge.
func (o Options) validate() error {
	if o.HistorySize < 1 {
		return ErrBadHistorySize
	}
	// NaN fails every comparison, so this also rejects NaN ridge.
	if !(o.Ridge > 0) || math.IsInf(o.Ridge, 1) {
		return ErrBadRidge
	}

	return nil
}

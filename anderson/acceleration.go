package anderson

import "github.com/katalvlaran/fixpoint/fixedpoint"

// NewAcceleration builds a standalone Anderson-accelerated solver over
// a bare fixed-point map: a plain fixedpoint.Iteration under an
// Anderson Wrapper. This is the entry point to reach for when there is
// no pre-existing solver to wrap — just a map f whose fixed point is
// wanted.
//
// iterOpts configures the inner iteration (its MaxIter must exceed
// opts.HistorySize); opts configures the acceleration.
//
// Errors: those of fixedpoint.NewIteration and NewWrapper.
func NewAcceleration(fn fixedpoint.Func, iterOpts fixedpoint.IterationOptions, opts Options) (*Wrapper, error) {
	inner, err := fixedpoint.NewIteration(fn, iterOpts)
	if err != nil {
		return nil, err
	}

	return NewWrapper(inner, opts)
}

// Package anderson: sentinel error set (unified, consistent).
// All construction and update paths return these sentinels on
// user-triggered conditions; tests match them via errors.Is. Numerical
// degeneracy (singular Gram under insufficient ridge) is deliberately
// NOT an error: it propagates as NaN through the returned values.

package anderson

import "errors"

var (
	// ErrNilSolver is returned by NewWrapper when the inner solver is nil.
	ErrNilSolver = errors.New("anderson: nil inner solver")

	// ErrBadHistorySize is returned at construction when HistorySize < 1.
	ErrBadHistorySize = errors.New("anderson: HistorySize must be at least 1")

	// ErrBadRidge is returned at construction when Ridge is not a
	// positive finite number.
	ErrBadRidge = errors.New("anderson: Ridge must be positive")

	// ErrBudgetTooSmall is returned at construction when the inner
	// solver's MaxIter does not exceed HistorySize: warm-up alone would
	// consume the whole iteration budget, leaving zero accelerated
	// steps.
	ErrBudgetTooSmall = errors.New("anderson: inner solver MaxIter must exceed HistorySize")

	// ErrInvalidState is returned by Update when the supplied State was
	// not produced by this wrapper's Init/Update chain.
	ErrInvalidState = errors.New("anderson: state was not produced by an Anderson wrapper")
)

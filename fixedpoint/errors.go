// Package fixedpoint: sentinel error set.
// Solvers must return these sentinels on user-triggered error
// conditions; tests match them via errors.Is.

package fixedpoint

import "errors"

var (
	// ErrNilFunc is returned by NewIteration when the fixed-point map
	// is nil.
	ErrNilFunc = errors.New("fixedpoint: nil fixed-point function")

	// ErrBadMaxIter is returned at construction when MaxIter < 1.
	ErrBadMaxIter = errors.New("fixedpoint: MaxIter must be positive")

	// ErrBadTol is returned at construction when Tol < 0.
	ErrBadTol = errors.New("fixedpoint: Tol must be non-negative")

	// ErrInvalidState is returned by Update when the supplied State was
	// not produced by the same solver's Init/Update chain.
	ErrInvalidState = errors.New("fixedpoint: state type does not match solver")
)

// Package tree: sentinel error set.
// All public operations return these sentinels on user-triggered error
// conditions; tests match them via errors.Is. Panics are reserved for
// programmer errors in constructors (nil children).

package tree

import "errors"

var (
	// ErrNilTree is returned when an operation receives a nil *Tree.
	ErrNilTree = errors.New("tree: nil tree")

	// ErrShapeMismatch is returned by binary operations when the two
	// trees are not conformant: different nesting structure, different
	// mapping keys, or different leaf lengths.
	ErrShapeMismatch = errors.New("tree: shape mismatch")

	// ErrLengthMismatch is returned by Unflatten when the flat vector
	// length does not equal the prototype's total leaf element count.
	ErrLengthMismatch = errors.New("tree: flat length mismatch")
)

package anderson

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixpoint/fixedpoint"
	"github.com/katalvlaran/fixpoint/tree"
)

// WrapperState is the state threaded through an accelerated run.
//
// Invariants (with m = HistorySize):
//   - ParamsHistory holds exactly m+1 iterates; ResidualsHistory holds
//     exactly m residuals; ResidualGram is m×m with
//     ResidualGram[i][j] = ⟨ResidualsHistory[i], ResidualsHistory[j]⟩
//     over the implied flat vectors.
//   - Both histories are logically circular: slot k mod m is the one
//     overwritten on iteration k.
//   - The state is a value: Update returns a fresh WrapperState with
//     fresh slices and a fresh Gram matrix; a caller may retain any
//     state it was handed and replay from it.
//
// SolverState is the wrapped solver's opaque sub-state; the wrapper
// never inspects it beyond reading its Error signal.
type WrapperState struct {
	IterNum          int
	SolverState      fixedpoint.State
	Err              float64
	ParamsHistory    []*tree.Tree
	ResidualsHistory []*tree.Tree
	ResidualGram     *mat.SymDense
}

// Error implements fixedpoint.State: the norm of the most recent
// residual — how far the latest extrapolated point is from being a
// fixed point of the inner solver's map.
func (s WrapperState) Error() float64 { return s.Err }

package anderson

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixpoint/tree"
)

// History buffer: the rolling window of iterates/residuals plus the
// incrementally maintained Gram matrix of residual inner products.
//
// buildHistory pays the full O(m²) Gram cost once, at warm-up;
// updateHistory afterwards recomputes only the row/column of the slot
// being overwritten — O(m) inner products per accelerated step.
//
// Both functions are copy-on-write: inputs are never mutated, so a
// WrapperState built from their outputs can be retained and replayed.

// buildHistory computes the initial window from m+1 warm-up iterates
// (oldest first): residual i is iterates[i+1] − iterates[i], and the
// Gram matrix holds all pairwise residual inner products.
//
// Returns (paramsHistory, residualsHistory, residualGram).
// Errors: tree sentinels when warm-up iterates are not conformant.
func buildHistory(iterates []*tree.Tree) ([]*tree.Tree, []*tree.Tree, *mat.SymDense, error) {
	m := len(iterates) - 1

	params := make([]*tree.Tree, m+1)
	copy(params, iterates)

	residuals := make([]*tree.Tree, m)
	for i := 0; i < m; i++ {
		r, err := tree.Sub(iterates[i+1], iterates[i])
		if err != nil {
			return nil, nil, nil, err
		}
		residuals[i] = r
	}

	gram := mat.NewSymDense(m, nil)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			d, err := tree.Dot(residuals[i], residuals[j])
			if err != nil {
				return nil, nil, nil, err
			}
			gram.SetSym(i, j, d)
		}
	}

	return params, residuals, gram, nil
}

// updateHistory overwrites circular slot pos with (newParam,
// newResidual) and patches only Gram row/column pos against the other
// stored residuals; every other entry is reused unchanged. The slot's
// self-term is the squared norm of newResidual.
//
// Returns fresh copies of the histories and Gram, plus the error
// signal: ‖newResidual‖.
func updateHistory(
	pos int,
	params, residuals []*tree.Tree,
	gram *mat.SymDense,
	newParam, newResidual *tree.Tree,
) ([]*tree.Tree, []*tree.Tree, *mat.SymDense, float64, error) {
	m := len(residuals)

	nextParams := make([]*tree.Tree, len(params))
	copy(nextParams, params)
	nextParams[pos] = newParam

	nextResiduals := make([]*tree.Tree, m)
	copy(nextResiduals, residuals)
	nextResiduals[pos] = newResidual

	nextGram := mat.NewSymDense(m, nil)
	nextGram.CopySym(gram)
	for j := 0; j < m; j++ {
		d, err := tree.Dot(newResidual, nextResiduals[j])
		if err != nil {
			return nil, nil, nil, 0, err
		}
		nextGram.SetSym(pos, j, d)
	}

	return nextParams, nextResiduals, nextGram, tree.L2Norm(newResidual), nil
}

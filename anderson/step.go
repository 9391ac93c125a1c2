package anderson

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixpoint/tree"
)

// coefficients solves the regularized normal equations
//
//	(G + ridge·I)·α = 1
//
// with a Cholesky factorization of the m×m system (symmetric positive
// definite thanks to ridge), then normalizes α ← α/Σα so the
// coefficients sum to one — the affine constraint that defines
// Anderson mixing.
//
// Numerical degeneracy is not an error: if the factorization fails
// (ridge too small for a near-singular G), α is filled with NaN and
// the NaN propagates to the caller. Likewise Σα = 0 divides to
// ±Inf/NaN; propagated, not corrected.
func coefficients(gram *mat.SymDense, ridge float64) []float64 {
	m := gram.SymmetricDim()

	reg := mat.NewSymDense(m, nil)
	reg.CopySym(gram)
	for i := 0; i < m; i++ {
		reg.SetSym(i, i, reg.At(i, i)+ridge)
	}

	ones := make([]float64, m)
	for i := range ones {
		ones[i] = 1
	}

	alpha := make([]float64, m)
	solved := false
	var chol mat.Cholesky
	if chol.Factorize(reg) {
		var sol mat.VecDense
		err := chol.SolveVecTo(&sol, mat.NewVecDense(m, ones))
		// A mat.Condition "error" is an ill-conditioning warning;
		// the solution is still computed and is used as-is.
		if _, warn := err.(mat.Condition); err == nil || warn {
			for i := 0; i < m; i++ {
				alpha[i] = sol.AtVec(i)
			}
			solved = true
		}
	}
	if !solved {
		for i := range alpha {
			alpha[i] = math.NaN()
		}
	}

	sum := 0.0
	for _, a := range alpha {
		sum += a
	}
	for i := range alpha {
		alpha[i] /= sum
	}

	return alpha
}

// andersonStep computes the extrapolated next iterate from the current
// window. With pᵢ the stored iterates, rᵢ the stored residuals and α
// the mixing coefficients from the Gram solve:
//
//	x* = Σ αᵢ·pᵢ + beta · Σ αᵢ·rᵢ
//
// which equals (1−beta)·Σ αᵢ·pᵢ + beta·Σ αᵢ·(pᵢ+rᵢ): beta blends the
// mixed raw iterates with the mixed one-step-updated iterates.
//
// Only structural problems (non-conformant history entries) return an
// error; NaN coefficients flow through the arithmetic untouched.
func andersonStep(
	params, residuals []*tree.Tree,
	gram *mat.SymDense,
	ridge, beta float64,
) (*tree.Tree, error) {
	alpha := coefficients(gram, ridge)

	extrapolated := tree.ZerosLike(params[0])
	var err error
	for i := range residuals {
		extrapolated, err = tree.AxPy(alpha[i], params[i], extrapolated)
		if err != nil {
			return nil, err
		}
		extrapolated, err = tree.AxPy(beta*alpha[i], residuals[i], extrapolated)
		if err != nil {
			return nil, err
		}
	}

	return extrapolated, nil
}

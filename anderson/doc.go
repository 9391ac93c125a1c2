// Package anderson implements Anderson acceleration of fixed-point
// iterations, both as a standalone solver over a bare fixed-point map
// and as a generic wrapper around any fixedpoint.Solver.
//
// 🚀 What is Anderson acceleration?
//
//	Plain fixed-point iteration x_{k+1} = f(x_k) converges linearly at
//	best. Anderson acceleration keeps a rolling window of the last m
//	iterates and their residuals r_i = f(x_i) − x_i, and forms the next
//	iterate as an affine combination of the window chosen by a small
//	regularized least-squares problem. On many problems this upgrades
//	slow linear convergence to something dramatically faster at the
//	cost of O(m) extra memory and one m×m solve per step.
//
// Algorithm Outline (one accelerated step):
//  1. Let G be the m×m Gram matrix of residual inner products,
//     G[i][j] = ⟨r_i, r_j⟩, maintained incrementally.
//  2. Solve the regularized normal equations (G + ridge·I)·α = 1.
//  3. Normalize α ← α / Σα so the coefficients sum to one.
//  4. Extrapolate x* = Σ αᵢ·xᵢ + beta · Σ αᵢ·rᵢ
//     (beta interpolates between mixing raw iterates, beta=0, and
//     mixing one-step-updated iterates, beta=1 — the classical form).
//  5. Run one inner-solver iteration from x*, fold the new iterate and
//     residual into the window at slot k mod m, and patch only row and
//     column k mod m of G.
//
// ✨ Key features:
//   - Wrapper accelerates *any* solver implementing the
//     fixedpoint.Solver contract, and is itself such a solver — so
//     wrappers nest and substitute transparently
//   - Incremental Gram maintenance: O(m) inner products per step, not
//     O(m²)
//   - Value-semantics state: every Update returns a fresh
//     WrapperState; nothing the caller holds is ever mutated
//   - Tunable ridge regularization for near-collinear residuals
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/fixpoint/anderson"
//	  "github.com/katalvlaran/fixpoint/fixedpoint"
//	  "github.com/katalvlaran/fixpoint/tree"
//	)
//
//	half := func(x *tree.Tree, _ ...any) (*tree.Tree, error) {
//	  return tree.Scale(0.5, x), nil
//	}
//	acc, err := anderson.NewAcceleration(half,
//	  fixedpoint.DefaultIterationOptions(), anderson.DefaultOptions())
//	params, state, err := fixedpoint.Run(acc, tree.Scalar(1))
//
// Numeric semantics:
//
//	The Gram matrix can be singular (or nearly so) when residuals grow
//	collinear; ridge trades acceleration strength for stability. If
//	ridge is too small the solve yields NaN, which is propagated — not
//	corrected — and surfaces through the state's Error signal. Consider
//	increasing Ridge if a run goes NaN.
//
// Complexity per accelerated step, with m = HistorySize and n the flat
// dimension of the iterate:
//
//	Time:   O(m·n) tree arithmetic + O(m³) for the m×m solve (m is
//	        small, typically ≤ 10)
//	Memory: O(m·n) for the window + O(m²) for the Gram matrix
package anderson

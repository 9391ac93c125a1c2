// Package fixpoint is your toolbox for fixed-point iteration in Go —
// from a plain iterate-until-converged loop to Anderson-accelerated
// solvers over arbitrarily nested numeric state.
//
// 🚀 What is fixpoint?
//
//	A small, deterministic library that brings together:
//		• Structured values: nested containers of numeric leaves with
//		  leaf-wise arithmetic (add, sub, dot, norm, flatten)
//		• A uniform Init/Update solver contract that any iterative
//		  solver can implement — and therefore wrap, nest or substitute
//		• Plain fixed-point iteration: x_{k+1} = f(x_k)
//		• Anderson acceleration: extrapolate the next iterate from an
//		  affine combination of the last m iterates and residuals
//		• An Anderson wrapper that accelerates *any* conforming solver
//
// ✨ Why choose fixpoint?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – no global state, no hidden randomness
//   - Value-semantics state – every Update returns a fresh state; runs
//     may execute concurrently with zero coordination
//   - Extensible – wrap your own solver by implementing two methods
//
// Under the hood, everything is organized under three subpackages:
//
//	tree/       — structured values and leaf-wise arithmetic
//	fixedpoint/ — the Solver contract, plain iteration, a Run driver
//	anderson/   — Anderson acceleration and the solver wrapper
//
// Quick sketch:
//
//	x₀ ──f──▶ x₁ ──f──▶ x₂ ──f──▶ …        (plain iteration)
//	{x₀…x_m} ──least-squares mix──▶ x*     (Anderson step)
//
// Dive into README.md and the examples/ directory for full walkthroughs.
//
//	go get github.com/katalvlaran/fixpoint
package fixpoint

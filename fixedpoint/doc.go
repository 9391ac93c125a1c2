// Package fixedpoint defines the uniform contract shared by iterative
// solvers and implements the simplest one: plain fixed-point iteration
// x_{k+1} = f(x_k).
//
// The contract is two functions plus an error signal:
//
//	Init(guess)            → (params, state)
//	Update(params, state)  → (params, state)
//	state.Error()          — non-negative convergence signal
//
// Any value implementing Solver can be driven by Run, substituted for
// any other solver, or wrapped — notably by the anderson package, which
// accelerates a conforming solver without knowing anything about its
// internals beyond this contract.
//
// State threading is by value: each Update returns a fresh State and
// never mutates the one passed in, so a caller may retain, compare, or
// replay states freely and may run independent solves concurrently.
//
// Extra arguments: Init, Update and OptimalityFun accept trailing
// `args ...any` which are forwarded to the underlying map unchanged on
// every call. They are opaque to this package — typically per-call
// hyper-parameters of the wrapped problem.
package fixedpoint

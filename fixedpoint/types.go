package fixedpoint

import "github.com/katalvlaran/fixpoint/tree"

// State is the opaque per-solver iteration state threaded through
// Update calls. Implementations are value-like: a solver returns a new
// State from every transition and never mutates one it handed out.
type State interface {
	// Error reports the solver's current convergence signal — a
	// non-negative scalar that approaches zero as the iterate
	// approaches a solution. NaN indicates numerical degeneracy.
	Error() float64
}

// Solver is the init/update contract every iterative solver exposes.
// Because the contract is uniform, solvers compose: anything that
// consumes a Solver (drivers, accelerators, wrappers) works with any
// implementation, including other wrappers.
//
// The trailing args of Init, Update and OptimalityFun are forwarded to
// the underlying problem unchanged on every call; a Solver must not
// interpret them.
type Solver interface {
	// Init produces the starting iterate and state from an initial
	// guess. The returned params may differ from guess (e.g. a warm
	// start).
	Init(guess *tree.Tree, args ...any) (*tree.Tree, State, error)

	// Update performs one iteration from params under the given state,
	// returning the next iterate and a fresh state.
	Update(params *tree.Tree, st State, args ...any) (*tree.Tree, State, error)

	// OptimalityFun evaluates the solver's native stationarity
	// criterion at params; it is zero (as a tree) at a solution.
	OptimalityFun(params *tree.Tree, args ...any) (*tree.Tree, error)

	// MaxIter is the configured iteration budget.
	MaxIter() int

	// Tol is the convergence tolerance compared against State.Error.
	Tol() float64
}

// Func is a fixed-point map: it produces the next iterate from the
// current one. Extra args are the pass-through arguments described on
// Solver.
type Func func(params *tree.Tree, args ...any) (*tree.Tree, error)

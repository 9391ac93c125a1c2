package fixedpoint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fixpoint/tree"
)

// IterationOptions configures a plain fixed-point Iteration solver.
//   - MaxIter: iteration budget (default 100).
//   - Tol:     convergence tolerance on the residual norm (default 1e-5).
//   - Verbose: print the error signal on every Update via fmt.Printf.
type IterationOptions struct {
	MaxIter int
	Tol     float64
	Verbose bool
}

// Default iteration parameters; single source of truth for zero-value
// behavior of DefaultIterationOptions.
const (
	DefaultMaxIter = 100
	DefaultTol     = 1e-5
)

// DefaultIterationOptions returns the documented defaults.
func DefaultIterationOptions() IterationOptions {
	return IterationOptions{MaxIter: DefaultMaxIter, Tol: DefaultTol}
}

// IterationState is the State of a plain Iteration solver: an iteration
// counter and the norm of the last residual f(x) − x.
type IterationState struct {
	IterNum int
	Err     float64
}

// Error implements State.
func (s IterationState) Error() float64 { return s.Err }

// Iteration is the plain fixed-point solver: Update applies the map
// once, x_{k+1} = f(x_k), and reports ‖f(x_k) − x_k‖ as its error
// signal. It converges linearly when f is a contraction.
//
// Iteration exists both as a usable solver and as the canonical inner
// solver for acceleration wrappers.
type Iteration struct {
	fn      Func
	maxIter int
	tol     float64
	verbose bool
}

// NewIteration builds a plain fixed-point solver over fn.
//
// Errors: ErrNilFunc, ErrBadMaxIter, ErrBadTol.
func NewIteration(fn Func, opts IterationOptions) (*Iteration, error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if opts.MaxIter < 1 {
		return nil, ErrBadMaxIter
	}
	if opts.Tol < 0 || math.IsNaN(opts.Tol) {
		return nil, ErrBadTol
	}

	return &Iteration{
		fn:      fn,
		maxIter: opts.MaxIter,
		tol:     opts.Tol,
		verbose: opts.Verbose,
	}, nil
}

// MaxIter implements Solver.
func (it *Iteration) MaxIter() int { return it.maxIter }

// Tol implements Solver.
func (it *Iteration) Tol() float64 { return it.tol }

// Init implements Solver. The starting iterate is the guess itself and
// the error signal is +Inf (no residual observed yet).
func (it *Iteration) Init(guess *tree.Tree, _ ...any) (*tree.Tree, State, error) {
	if guess == nil {
		return nil, nil, tree.ErrNilTree
	}

	return guess, IterationState{IterNum: 0, Err: math.Inf(1)}, nil
}

// Update implements Solver: one application of the map.
func (it *Iteration) Update(params *tree.Tree, st State, args ...any) (*tree.Tree, State, error) {
	prev, ok := st.(IterationState)
	if !ok {
		return nil, nil, ErrInvalidState
	}

	next, err := it.fn(params, args...)
	if err != nil {
		return nil, nil, err
	}

	residual, err := tree.Sub(next, params)
	if err != nil {
		return nil, nil, err
	}

	nextState := IterationState{IterNum: prev.IterNum + 1, Err: tree.L2Norm(residual)}
	if it.verbose {
		fmt.Printf("fixedpoint: iter=%d error=%g\n", nextState.IterNum, nextState.Err)
	}

	return next, nextState, nil
}

// OptimalityFun implements Solver: the fixed-point residual f(x) − x.
func (it *Iteration) OptimalityFun(params *tree.Tree, args ...any) (*tree.Tree, error) {
	next, err := it.fn(params, args...)
	if err != nil {
		return nil, err
	}

	return tree.Sub(next, params)
}

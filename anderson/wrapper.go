package anderson

import (
	"fmt"

	"github.com/katalvlaran/fixpoint/fixedpoint"
	"github.com/katalvlaran/fixpoint/tree"
)

// Wrapper accelerates an arbitrary inner solver with Anderson mixing.
// It implements fixedpoint.Solver itself, with the same contract as
// the solver it wraps, so it can be driven by fixedpoint.Run, nested
// inside another wrapper, or substituted anywhere a Solver is
// expected.
//
// Budget accounting: Init runs the inner solver for HistorySize
// warm-up steps, so the wrapper's own MaxIter is the inner solver's
// MaxIter minus HistorySize. Construction fails with ErrBudgetTooSmall
// when that would leave no accelerated steps.
type Wrapper struct {
	inner       fixedpoint.Solver
	historySize int
	beta        float64
	ridge       float64
	verbose     bool
	maxIter     int
	tol         float64
}

// NewWrapper builds an Anderson wrapper around inner.
//
// Errors: ErrNilSolver, ErrBadHistorySize, ErrBadRidge,
// ErrBudgetTooSmall (inner.MaxIter() ≤ HistorySize).
func NewWrapper(inner fixedpoint.Solver, opts Options) (*Wrapper, error) {
	if inner == nil {
		return nil, ErrNilSolver
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if inner.MaxIter() <= opts.HistorySize {
		return nil, ErrBudgetTooSmall
	}

	return &Wrapper{
		inner:       inner,
		historySize: opts.HistorySize,
		beta:        opts.Beta,
		ridge:       opts.Ridge,
		verbose:     opts.Verbose,
		maxIter:     inner.MaxIter() - opts.HistorySize,
		tol:         inner.Tol(),
	}, nil
}

// MaxIter implements fixedpoint.Solver: the inner budget minus warm-up.
func (w *Wrapper) MaxIter() int { return w.maxIter }

// Tol implements fixedpoint.Solver: copied from the inner solver.
func (w *Wrapper) Tol() float64 { return w.tol }

// HistorySize returns the configured window size m.
func (w *Wrapper) HistorySize() int { return w.historySize }

// Init implements fixedpoint.Solver. It runs the inner solver cold for
// HistorySize steps from guess, collecting every intermediate iterate,
// then builds the full window and Gram matrix from scratch. The
// returned iterate is the most recent warm-up iterate and the state
// starts at iteration 0 with the window already full.
//
// Cost: HistorySize inner updates + O(HistorySize²) inner products,
// paid entirely here rather than amortized over accelerated steps.
func (w *Wrapper) Init(guess *tree.Tree, args ...any) (*tree.Tree, fixedpoint.State, error) {
	params, innerState, err := w.inner.Init(guess, args...)
	if err != nil {
		return nil, nil, err
	}

	iterates := make([]*tree.Tree, 0, w.historySize+1)
	iterates = append(iterates, params)
	for i := 0; i < w.historySize; i++ {
		params, innerState, err = w.inner.Update(params, innerState, args...)
		if err != nil {
			return nil, nil, err
		}
		iterates = append(iterates, params)
	}

	paramsHist, residualsHist, gram, err := buildHistory(iterates)
	if err != nil {
		return nil, nil, err
	}

	st := WrapperState{
		IterNum:          0,
		SolverState:      innerState,
		Err:              innerState.Error(),
		ParamsHistory:    paramsHist,
		ResidualsHistory: residualsHist,
		ResidualGram:     gram,
	}

	return params, st, nil
}

// Update implements fixedpoint.Solver: one Anderson-accelerated step.
//
// The params argument is ignored — only the window inside the state
// determines the next iterate (it is part of the Solver signature so
// wrappers remain substitutable for plain solvers).
//
// Steps: extrapolate from the window, run one inner iteration from the
// extrapolated point, fold (extrapolated, residual) into circular slot
// iter mod HistorySize, and report ‖residual‖ as the new error signal.
// Inner-solver failures propagate unmodified.
func (w *Wrapper) Update(_ *tree.Tree, st fixedpoint.State, args ...any) (*tree.Tree, fixedpoint.State, error) {
	prev, ok := st.(WrapperState)
	if !ok {
		return nil, nil, ErrInvalidState
	}

	pos := prev.IterNum % w.historySize

	extrapolated, err := andersonStep(
		prev.ParamsHistory, prev.ResidualsHistory, prev.ResidualGram,
		w.ridge, w.beta)
	if err != nil {
		return nil, nil, err
	}

	next, innerState, err := w.innerStep(extrapolated, args...)
	if err != nil {
		return nil, nil, err
	}

	residual, err := tree.Sub(next, extrapolated)
	if err != nil {
		return nil, nil, err
	}

	paramsHist, residualsHist, gram, errSignal, err := updateHistory(
		pos, prev.ParamsHistory, prev.ResidualsHistory, prev.ResidualGram,
		extrapolated, residual)
	if err != nil {
		return nil, nil, err
	}

	nextState := WrapperState{
		IterNum:          prev.IterNum + 1,
		SolverState:      innerState,
		Err:              errSignal,
		ParamsHistory:    paramsHist,
		ResidualsHistory: residualsHist,
		ResidualGram:     gram,
	}
	if w.verbose {
		fmt.Printf("anderson: iter=%d error=%g\n", nextState.IterNum, nextState.Err)
	}

	return next, nextState, nil
}

// innerStep runs exactly one inner-solver iteration from start,
// independent of any previously stored inner state: a fresh Init
// followed by a single Update, with args forwarded unchanged to both.
func (w *Wrapper) innerStep(start *tree.Tree, args ...any) (*tree.Tree, fixedpoint.State, error) {
	point, innerState, err := w.inner.Init(start, args...)
	if err != nil {
		return nil, nil, err
	}

	return w.inner.Update(point, innerState, args...)
}

// OptimalityFun implements fixedpoint.Solver by delegating verbatim to
// the inner solver: the wrapper defines no stationarity criterion of
// its own, so convergence is judged by the wrapped problem's native
// criterion.
func (w *Wrapper) OptimalityFun(params *tree.Tree, args ...any) (*tree.Tree, error) {
	return w.inner.OptimalityFun(params, args...)
}

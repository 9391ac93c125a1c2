package anderson_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixpoint/anderson"
	"github.com/katalvlaran/fixpoint/fixedpoint"
	"github.com/katalvlaran/fixpoint/tree"
)

// half is the contraction x ↦ 0.5·x with fixed point 0.
func half(x *tree.Tree, _ ...any) (*tree.Tree, error) {
	return tree.Scale(0.5, x), nil
}

// newHalfSolver builds the plain inner solver used across these tests.
func newHalfSolver(t *testing.T, maxIter int, tol float64) *fixedpoint.Iteration {
	t.Helper()
	it, err := fixedpoint.NewIteration(half, fixedpoint.IterationOptions{MaxIter: maxIter, Tol: tol})
	require.NoError(t, err)

	return it
}

// TestNewWrapper_Validation covers every construction sentinel.
func TestNewWrapper_Validation(t *testing.T) {
	inner := newHalfSolver(t, 100, 1e-6)

	_, err := anderson.NewWrapper(nil, anderson.DefaultOptions())
	assert.ErrorIs(t, err, anderson.ErrNilSolver, "nil inner solver")

	opts := anderson.DefaultOptions()
	opts.HistorySize = 0
	_, err = anderson.NewWrapper(inner, opts)
	assert.ErrorIs(t, err, anderson.ErrBadHistorySize, "HistorySize < 1")

	opts = anderson.DefaultOptions()
	opts.Ridge = 0
	_, err = anderson.NewWrapper(inner, opts)
	assert.ErrorIs(t, err, anderson.ErrBadRidge, "Ridge must be positive")

	opts = anderson.DefaultOptions()
	opts.Ridge = math.NaN()
	_, err = anderson.NewWrapper(inner, opts)
	assert.ErrorIs(t, err, anderson.ErrBadRidge, "NaN Ridge must be rejected")
}

// TestNewWrapper_BudgetGuard: warm-up must not consume the whole inner
// iteration budget — rejected before any iteration runs.
func TestNewWrapper_BudgetGuard(t *testing.T) {
	opts := anderson.DefaultOptions()
	opts.HistorySize = 5

	// budget < history
	_, err := anderson.NewWrapper(newHalfSolver(t, 3, 1e-6), opts)
	assert.ErrorIs(t, err, anderson.ErrBudgetTooSmall, "MaxIter < HistorySize")

	// budget == history: zero accelerated steps, equally useless
	_, err = anderson.NewWrapper(newHalfSolver(t, 5, 1e-6), opts)
	assert.ErrorIs(t, err, anderson.ErrBudgetTooSmall, "MaxIter == HistorySize")

	// one accelerated step is the minimum viable configuration
	w, err := anderson.NewWrapper(newHalfSolver(t, 6, 1e-6), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, w.MaxIter(), "budget reduced by warm-up")
	assert.Equal(t, 1e-6, w.Tol(), "tolerance copied from the inner solver")
}

// TestWrapper_InitWarmUp: init runs the inner solver cold for
// HistorySize steps and returns a fully populated window at iteration 0.
func TestWrapper_InitWarmUp(t *testing.T) {
	opts := anderson.DefaultOptions()
	opts.HistorySize = 2
	w, err := anderson.NewWrapper(newHalfSolver(t, 100, 1e-6), opts)
	require.NoError(t, err)

	params, st, err := w.Init(tree.Scalar(1))
	require.NoError(t, err)

	assert.Equal(t, []float64{0.25}, params.Values(), "most recent warm-up iterate")

	ws, ok := st.(anderson.WrapperState)
	require.True(t, ok, "state must be a WrapperState")
	assert.Equal(t, 0, ws.IterNum, "warm-up is paid inside Init")
	assert.Equal(t, 0.25, ws.Error(), "inner error after two warm-up steps")

	require.Len(t, ws.ParamsHistory, 3)
	assert.Equal(t, []float64{1}, ws.ParamsHistory[0].Values())
	assert.Equal(t, []float64{0.5}, ws.ParamsHistory[1].Values())
	assert.Equal(t, []float64{0.25}, ws.ParamsHistory[2].Values())

	require.Len(t, ws.ResidualsHistory, 2)
	assert.Equal(t, []float64{-0.5}, ws.ResidualsHistory[0].Values())
	assert.Equal(t, []float64{-0.25}, ws.ResidualsHistory[1].Values())
}

// TestWrapper_EndToEnd is the headline scenario: accelerating the
// 0.5·x contraction with HistorySize=2, beta=1, ridge=1e-5 from x₀=1.
// The error signal must decrease strictly and cross 1e-6 in no more
// updates than the 20 the plain solver needs.
func TestWrapper_EndToEnd(t *testing.T) {
	const plainSteps = 20 // 0.5^k ≤ 1e-6 first holds at k = 20

	opts := anderson.Options{HistorySize: 2, Beta: 1, Ridge: 1e-5}
	w, err := anderson.NewWrapper(newHalfSolver(t, 100, 1e-6), opts)
	require.NoError(t, err)

	params, st, err := w.Init(tree.Scalar(1))
	require.NoError(t, err)

	steps := 0
	prevErr := st.Error()
	for st.Error() > 1e-6 {
		require.Less(t, steps, plainSteps, "acceleration must not be slower than plain iteration")
		params, st, err = w.Update(params, st)
		require.NoError(t, err)
		steps++

		assert.Less(t, st.Error(), prevErr, "error must decrease strictly at step %d", steps)
		prevErr = st.Error()
	}

	assert.Less(t, math.Abs(params.Values()[0]), 1e-5, "iterate driven near the fixed point 0")
	assert.LessOrEqual(t, steps, plainSteps, "no more steps than unaccelerated")
}

// TestWrapper_HistorySizeInvariant: after any number of updates the
// window sizes and Gram dimensions never change.
func TestWrapper_HistorySizeInvariant(t *testing.T) {
	opts := anderson.DefaultOptions()
	opts.HistorySize = 3
	w, err := anderson.NewWrapper(newHalfSolver(t, 100, 0), opts)
	require.NoError(t, err)

	params, st, err := w.Init(tree.Leaf(1, -2, 0.5))
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		params, st, err = w.Update(params, st)
		require.NoError(t, err)

		ws := st.(anderson.WrapperState)
		assert.Len(t, ws.ParamsHistory, 4, "history_size+1 iterates after update %d", i+1)
		assert.Len(t, ws.ResidualsHistory, 3, "history_size residuals after update %d", i+1)
		assert.Equal(t, 3, ws.ResidualGram.SymmetricDim(), "Gram stays 3×3 after update %d", i+1)
		assert.Equal(t, i+1, ws.IterNum, "iteration counter advances by one")
	}
}

// TestWrapper_StateImmutability: a retained state is never mutated by
// later updates, and replaying an update from the same state is
// deterministic.
func TestWrapper_StateImmutability(t *testing.T) {
	opts := anderson.Options{HistorySize: 2, Beta: 1, Ridge: 1e-5}
	w, err := anderson.NewWrapper(newHalfSolver(t, 100, 1e-6), opts)
	require.NoError(t, err)

	params, st, err := w.Init(tree.Scalar(1))
	require.NoError(t, err)
	saved := st.(anderson.WrapperState)
	savedFlat := tree.Flatten(saved.ParamsHistory[0])
	savedGram00 := saved.ResidualGram.At(0, 0)

	next1, st1, err := w.Update(params, st)
	require.NoError(t, err)

	assert.Equal(t, savedFlat, tree.Flatten(saved.ParamsHistory[0]), "retained window untouched")
	assert.Equal(t, savedGram00, saved.ResidualGram.At(0, 0), "retained Gram untouched")

	// Replay from the same retained state: identical transition.
	next2, st2, err := w.Update(params, saved)
	require.NoError(t, err)
	assert.Equal(t, tree.Flatten(next1), tree.Flatten(next2), "replay yields the same iterate")
	assert.Equal(t, st1.Error(), st2.Error(), "replay yields the same error signal")
}

// TestWrapper_InvalidState rejects states from other solvers.
func TestWrapper_InvalidState(t *testing.T) {
	w, err := anderson.NewWrapper(newHalfSolver(t, 100, 1e-6), anderson.DefaultOptions())
	require.NoError(t, err)

	_, _, err = w.Update(tree.Scalar(1), fixedpoint.IterationState{})
	assert.ErrorIs(t, err, anderson.ErrInvalidState, "foreign state must be rejected")
}

// TestWrapper_InnerErrorPropagates: inner solver failures surface
// unmodified, with no translation layer.
func TestWrapper_InnerErrorPropagates(t *testing.T) {
	boom := errors.New("inner solver exploded")
	calls := 0
	flaky := func(x *tree.Tree, _ ...any) (*tree.Tree, error) {
		calls++
		if calls > 3 {
			return nil, boom
		}

		return tree.Scale(0.5, x), nil
	}
	inner, err := fixedpoint.NewIteration(flaky, fixedpoint.IterationOptions{MaxIter: 100, Tol: 1e-6})
	require.NoError(t, err)

	opts := anderson.DefaultOptions()
	opts.HistorySize = 2
	w, err := anderson.NewWrapper(inner, opts)
	require.NoError(t, err)

	params, st, err := w.Init(tree.Scalar(1)) // warm-up consumes 2 calls
	require.NoError(t, err)

	_, st, err = w.Update(params, st) // 3rd call, still fine
	require.NoError(t, err)
	_, _, err = w.Update(params, st) // 4th call explodes
	assert.ErrorIs(t, err, boom, "inner failure must propagate unmodified")
}

// TestWrapper_OptimalityFunDelegates: the wrapper defines no criterion
// of its own — byte-for-byte the inner solver's value.
func TestWrapper_OptimalityFunDelegates(t *testing.T) {
	inner := newHalfSolver(t, 100, 1e-6)
	w, err := anderson.NewWrapper(inner, anderson.DefaultOptions())
	require.NoError(t, err)

	at := tree.Leaf(3, -1)
	fromInner, err := inner.OptimalityFun(at)
	require.NoError(t, err)
	fromWrapper, err := w.OptimalityFun(at)
	require.NoError(t, err)

	assert.Equal(t, tree.Flatten(fromInner), tree.Flatten(fromWrapper), "delegation must not transform the criterion")
}

// TestWrapper_NaNDegeneracy: with a vanishing ridge and perfectly
// collinear residuals (any linear contraction trace), the Gram solve
// degenerates; NaN flows through values and error signal without a Go
// error — detectable by the caller, never corrected.
func TestWrapper_NaNDegeneracy(t *testing.T) {
	opts := anderson.Options{HistorySize: 2, Beta: 1, Ridge: 1e-300}
	w, err := anderson.NewWrapper(newHalfSolver(t, 100, 1e-6), opts)
	require.NoError(t, err)

	params, st, err := w.Init(tree.Scalar(1))
	require.NoError(t, err)

	next, st, err := w.Update(params, st)
	require.NoError(t, err, "degeneracy is silent, not an error")
	assert.True(t, math.IsNaN(next.Values()[0]), "NaN extrapolation")
	assert.True(t, math.IsNaN(st.Error()), "NaN error signal")
}

// TestWrapper_Nesting: a Wrapper is itself a fixedpoint.Solver, so it
// can be wrapped again.
func TestWrapper_Nesting(t *testing.T) {
	innerOpts := anderson.Options{HistorySize: 2, Beta: 1, Ridge: 1e-5}
	w1, err := anderson.NewWrapper(newHalfSolver(t, 100, 1e-6), innerOpts)
	require.NoError(t, err)

	w2, err := anderson.NewWrapper(w1, innerOpts)
	require.NoError(t, err)
	assert.Equal(t, w1.MaxIter()-2, w2.MaxIter(), "budgets stack")

	params, st, err := fixedpoint.Run(w2, tree.Scalar(1))
	require.NoError(t, err)
	assert.LessOrEqual(t, st.Error(), w2.Tol(), "nested acceleration still converges")
	assert.Less(t, math.Abs(params.Values()[0]), 1e-4, "iterate near the fixed point")
}

// TestWrapper_ConcurrentRuns: states are self-contained values, so
// independent solves over one shared Wrapper need no coordination.
func TestWrapper_ConcurrentRuns(t *testing.T) {
	opts := anderson.Options{HistorySize: 2, Beta: 1, Ridge: 1e-5}
	w, err := anderson.NewWrapper(newHalfSolver(t, 100, 1e-6), opts)
	require.NoError(t, err)

	const runs = 8
	results := make([]float64, runs)
	var wg sync.WaitGroup
	for g := 0; g < runs; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			_, st, runErr := fixedpoint.Run(w, tree.Scalar(float64(g+1)))
			if runErr != nil {
				t.Errorf("run %d failed: %v", g, runErr)

				return
			}
			results[g] = st.Error()
		}(g)
	}
	wg.Wait()

	for g, e := range results {
		assert.LessOrEqual(t, e, 1e-6, "run %d must converge independently", g)
	}
}

// TestNewAcceleration: the standalone entry point over a bare map.
func TestNewAcceleration(t *testing.T) {
	_, err := anderson.NewAcceleration(nil, fixedpoint.DefaultIterationOptions(), anderson.DefaultOptions())
	assert.ErrorIs(t, err, fixedpoint.ErrNilFunc, "inner construction errors surface")

	acc, err := anderson.NewAcceleration(half,
		fixedpoint.IterationOptions{MaxIter: 100, Tol: 1e-8},
		anderson.Options{HistorySize: 2, Beta: 1, Ridge: 1e-5})
	require.NoError(t, err)

	params, st, err := fixedpoint.Run(acc, tree.Scalar(1))
	require.NoError(t, err)
	assert.LessOrEqual(t, st.Error(), 1e-8, "accelerated run converges")
	assert.Less(t, math.Abs(params.Values()[0]), 1e-6, "iterate near the fixed point 0")
}

package fixedpoint

import "github.com/katalvlaran/fixpoint/tree"

// Run drives a Solver to completion: Init once, then Update until the
// error signal drops to s.Tol() or s.MaxIter() updates have run,
// whichever comes first. Extra args are forwarded to every call.
//
// Run performs no retries and no error translation: the first failure
// of Init or Update is returned unmodified. A NaN error signal never
// compares ≤ Tol, so degenerate runs simply exhaust the budget and
// surface the NaN through the final State.
//
// Complexity: at most MaxIter solver updates; O(1) bookkeeping per step.
func Run(s Solver, guess *tree.Tree, args ...any) (*tree.Tree, State, error) {
	params, st, err := s.Init(guess, args...)
	if err != nil {
		return nil, nil, err
	}

	for i := 0; i < s.MaxIter(); i++ {
		if st.Error() <= s.Tol() {
			break
		}
		params, st, err = s.Update(params, st, args...)
		if err != nil {
			return nil, nil, err
		}
	}

	return params, st, nil
}

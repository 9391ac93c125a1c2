package anderson

// Test-Bridge (White-Box) for Private Kernels
//
// Purpose:
//   - Expose the unexported history/step kernels to anderson_test ONLY,
//     so the incremental-Gram and coefficient invariants can be checked
//     directly without widening the prod API.
//
// Provided Surface:
//   - thin pass-through aliases; no side effects, no extra allocations.

var (
	CoefficientsTestOnly  = coefficients
	StepTestOnly          = andersonStep
	BuildHistoryTestOnly  = buildHistory
	UpdateHistoryTestOnly = updateHistory
)

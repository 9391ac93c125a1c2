// Package tree provides structured numeric values: arbitrarily nested
// containers (lists and string-keyed mappings) whose leaves are slices
// of float64, treated as a single mathematical vector.
//
// 🚀 What is a structured value?
//
//	Iterative solvers rarely work on a bare []float64 — state tends to
//	be a bundle of arrays (weights + biases, positions + velocities,
//	per-block parameters). Package tree lets you keep that bundle
//	nested the way your problem is shaped, while every arithmetic
//	operation (add, sub, dot, norm) is applied leaf-wise as if the
//	whole structure were one flat vector.
//
// ✨ Key features:
//   - Leaf, List and Map constructors for building nested values
//   - Leaf-wise Add / Sub / Scale / AxPy producing new trees —
//     existing trees are never mutated
//   - Dot and L2Norm over the implied flat vector
//   - Flatten / Unflatten between a tree and a single []float64
//   - Strict conformance checks: binary operations fail fast with
//     ErrShapeMismatch on mismatched structure
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/fixpoint/tree"
//
//	x := tree.Map(map[string]*tree.Tree{
//	  "w": tree.Leaf(1, 2, 3),
//	  "b": tree.Scalar(0.5),
//	})
//	y := tree.Scale(2, x)    // same shape, every leaf doubled
//	d, err := tree.Dot(x, y) // flat inner product
//
// All operations are deterministic: mapping keys are kept sorted, so
// traversal order (and hence Flatten order) is stable across runs.
package tree

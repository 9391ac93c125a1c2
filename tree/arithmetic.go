package tree

import "math"

// This file implements all leaf-wise arithmetic on top of two generic
// traversal kernels:
//
//   - apply: unary  — visit one tree, produce a new tree of equal shape.
//   - zip:   binary — visit two conformant trees in lock-step, produce
//     a new tree of the shared shape.
//
// Every public operation is an instance of one of these kernels; no
// operation re-implements traversal.

// apply maps fn over every leaf element of t, returning a new tree of
// the same shape. The input tree is left untouched.
func apply(t *Tree, fn func(float64) float64) *Tree {
	if t.kind == leafKind {
		out := make([]float64, len(t.leaf))
		for i, v := range t.leaf {
			out[i] = fn(v)
		}

		return &Tree{kind: leafKind, leaf: out}
	}

	children := make([]*Tree, len(t.children))
	for i, c := range t.children {
		children[i] = apply(c, fn)
	}

	return &Tree{kind: t.kind, children: children, keys: t.keys}
}

// zip maps fn over corresponding leaf elements of a and b, returning a
// new tree of the shared shape. a and b must be conformant.
func zip(a, b *Tree, fn func(x, y float64) float64) (*Tree, error) {
	if a == nil || b == nil {
		return nil, ErrNilTree
	}
	if !SameShape(a, b) {
		return nil, ErrShapeMismatch
	}

	return zipRec(a, b, fn), nil
}

// zipRec is the unchecked recursion behind zip; shapes are already
// known to be conformant.
func zipRec(a, b *Tree, fn func(x, y float64) float64) *Tree {
	if a.kind == leafKind {
		out := make([]float64, len(a.leaf))
		for i := range a.leaf {
			out[i] = fn(a.leaf[i], b.leaf[i])
		}

		return &Tree{kind: leafKind, leaf: out}
	}

	children := make([]*Tree, len(a.children))
	for i := range a.children {
		children[i] = zipRec(a.children[i], b.children[i], fn)
	}

	return &Tree{kind: a.kind, children: children, keys: a.keys}
}

// Add returns a + b leaf-wise.
func Add(a, b *Tree) (*Tree, error) {
	return zip(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a − b leaf-wise. The residual of an iterate x under a map
// f is Sub(f(x), x); it is zero exactly at a fixed point.
func Sub(a, b *Tree) (*Tree, error) {
	return zip(a, b, func(x, y float64) float64 { return x - y })
}

// Scale returns s·t leaf-wise. Scale of a nil tree is nil.
func Scale(s float64, t *Tree) *Tree {
	if t == nil {
		return nil
	}

	return apply(t, func(v float64) float64 { return s * v })
}

// AxPy returns y + a·x leaf-wise (the BLAS axpy update). x and y must
// be conformant.
func AxPy(a float64, x, y *Tree) (*Tree, error) {
	return zip(x, y, func(xv, yv float64) float64 { return yv + a*xv })
}

// Clone returns a deep copy of t. Clone of nil is nil.
func Clone(t *Tree) *Tree {
	if t == nil {
		return nil
	}

	return apply(t, func(v float64) float64 { return v })
}

// ZerosLike returns a tree of t's shape with every leaf element zero.
func ZerosLike(t *Tree) *Tree {
	if t == nil {
		return nil
	}

	return apply(t, func(float64) float64 { return 0 })
}

// Dot returns the inner product of a and b over the implied flat
// vectors: Σ over all corresponding leaf elements of aᵢ·bᵢ.
func Dot(a, b *Tree) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilTree
	}
	if !SameShape(a, b) {
		return 0, ErrShapeMismatch
	}

	return dotRec(a, b), nil
}

func dotRec(a, b *Tree) float64 {
	if a.kind == leafKind {
		sum := 0.0
		for i := range a.leaf {
			sum += a.leaf[i] * b.leaf[i]
		}

		return sum
	}

	sum := 0.0
	for i := range a.children {
		sum += dotRec(a.children[i], b.children[i])
	}

	return sum
}

// L2Norm returns the Euclidean norm of t over the implied flat vector.
// L2Norm of nil is 0.
func L2Norm(t *Tree) float64 {
	if t == nil {
		return 0
	}

	return math.Sqrt(dotRec(t, t))
}

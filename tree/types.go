package tree

import "sort"

// node kind discriminator. A Tree is exactly one of leaf / list / map.
type kind uint8

const (
	leafKind kind = iota
	listKind
	mapKind
)

// Tree is a structured numeric value: a leaf holding a []float64, an
// ordered list of subtrees, or a string-keyed mapping of subtrees.
//
// Trees are immutable by convention: every operation in this package
// returns a new tree and never writes into an existing one. Sharing a
// *Tree between goroutines is therefore safe without locking.
//
// Two trees are conformant when they have the same nesting structure,
// the same mapping keys, and equal leaf lengths position by position.
// All binary arithmetic is defined only on conformant pairs.
type Tree struct {
	kind     kind
	leaf     []float64
	children []*Tree
	keys     []string // mapKind only; sorted, parallel to children
}

// Leaf returns a leaf tree holding a copy of values.
func Leaf(values ...float64) *Tree {
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Tree{kind: leafKind, leaf: buf}
}

// Scalar returns a leaf tree holding the single value v.
func Scalar(v float64) *Tree { return Leaf(v) }

// List returns a tree whose children are the given subtrees, in order.
// Panics on a nil child (programmer error, caught at construction).
func List(children ...*Tree) *Tree {
	nodes := make([]*Tree, len(children))
	for i, c := range children {
		if c == nil {
			panic("tree: List called with nil child")
		}
		nodes[i] = c
	}

	return &Tree{kind: listKind, children: nodes}
}

// Map returns a tree whose children are the given subtrees, keyed by
// name. Keys are sorted so that traversal (and Flatten) order is
// deterministic regardless of map iteration order.
// Panics on a nil child (programmer error, caught at construction).
func Map(entries map[string]*Tree) *Tree {
	keys := make([]string, 0, len(entries))
	for k, c := range entries {
		if c == nil {
			panic("tree: Map called with nil child")
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	nodes := make([]*Tree, len(keys))
	for i, k := range keys {
		nodes[i] = entries[k]
	}

	return &Tree{kind: mapKind, children: nodes, keys: keys}
}

// IsLeaf reports whether t is a leaf node.
func (t *Tree) IsLeaf() bool { return t != nil && t.kind == leafKind }

// Values returns a copy of the leaf slice, or nil for non-leaf nodes.
func (t *Tree) Values() []float64 {
	if t == nil || t.kind != leafKind {
		return nil
	}
	out := make([]float64, len(t.leaf))
	copy(out, t.leaf)

	return out
}

// Len returns the total number of leaf elements in t (the dimension of
// the implied flat vector). Len of a nil tree is 0.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	if t.kind == leafKind {
		return len(t.leaf)
	}
	n := 0
	for _, c := range t.children {
		n += c.Len()
	}

	return n
}

// SameShape reports whether a and b are conformant: same nesting
// structure, same mapping keys, equal leaf lengths.
func SameShape(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	if a.kind == leafKind {
		return len(a.leaf) == len(b.leaf)
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.keys {
		if a.keys[i] != b.keys[i] {
			return false
		}
	}
	for i := range a.children {
		if !SameShape(a.children[i], b.children[i]) {
			return false
		}
	}

	return true
}

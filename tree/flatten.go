package tree

// Flatten returns the implied flat vector of t: all leaf elements
// concatenated in deterministic traversal order (list order; mapping
// keys ascending). Flatten of nil is nil.
func Flatten(t *Tree) []float64 {
	if t == nil {
		return nil
	}
	out := make([]float64, 0, t.Len())

	return flattenRec(t, out)
}

func flattenRec(t *Tree, out []float64) []float64 {
	if t.kind == leafKind {
		return append(out, t.leaf...)
	}
	for _, c := range t.children {
		out = flattenRec(c, out)
	}

	return out
}

// Unflatten rebuilds a tree of proto's shape from the flat vector.
// len(flat) must equal proto.Len(); otherwise ErrLengthMismatch.
// Unflatten is the inverse of Flatten for any prototype of the same
// shape as the flattened tree.
func Unflatten(proto *Tree, flat []float64) (*Tree, error) {
	if proto == nil {
		return nil, ErrNilTree
	}
	if len(flat) != proto.Len() {
		return nil, ErrLengthMismatch
	}
	t, _ := unflattenRec(proto, flat)

	return t, nil
}

// unflattenRec consumes the leading proto.Len() elements of flat and
// returns the rebuilt subtree plus the unconsumed remainder.
func unflattenRec(proto *Tree, flat []float64) (*Tree, []float64) {
	if proto.kind == leafKind {
		n := len(proto.leaf)
		buf := make([]float64, n)
		copy(buf, flat[:n])

		return &Tree{kind: leafKind, leaf: buf}, flat[n:]
	}

	children := make([]*Tree, len(proto.children))
	for i, c := range proto.children {
		children[i], flat = unflattenRec(c, flat)
	}

	return &Tree{kind: proto.kind, children: children, keys: proto.keys}, flat
}

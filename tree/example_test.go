package tree_test

import (
	"fmt"

	"github.com/katalvlaran/fixpoint/tree"
)

// ExampleFlatten demonstrates how a nested value maps onto a single
// flat vector: list order first, mapping keys in ascending order.
func ExampleFlatten() {
	x := tree.Map(map[string]*tree.Tree{
		"weights": tree.Leaf(1, 2, 3),
		"bias":    tree.Scalar(0.5),
	})

	fmt.Println(tree.Flatten(x))
	fmt.Println(x.Len())
	// Output:
	// [0.5 1 2 3]
	// 4
}

// ExampleDot treats two nested values as flat vectors and computes
// their inner product leaf-wise.
func ExampleDot() {
	x := tree.List(tree.Leaf(1, 2), tree.Scalar(3))
	y := tree.Scale(2, x)

	d, err := tree.Dot(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("⟨x,2x⟩ = %g\n", d)
	// Output:
	// ⟨x,2x⟩ = 28
}

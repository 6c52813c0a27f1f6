package tree_test

import (
	"dsa_trees/tree"

	"pgregory.net/rapid"
)

// TreeGenerator generates trees of small ints at most maxDepth deep. Values are
// kept in a narrow range so duplicates (and thus identity vs value equality)
// show up often.
func TreeGenerator(maxDepth int) *rapid.Generator[*tree.Tree[int]] {
	return TreeOf(rapid.IntRange(-20, 20), maxDepth)
}

// TreeOf generates trees at most maxDepth deep with values drawn from values.
func TreeOf[T tree.Ordered](values *rapid.Generator[T], maxDepth int) *rapid.Generator[*tree.Tree[T]] {
	return rapid.Custom(func(t *rapid.T) *tree.Tree[T] {
		return tree.New(drawNode(t, values, maxDepth))
	})
}

func drawNode[T tree.Ordered](t *rapid.T, values *rapid.Generator[T], depth int) *tree.Node[T] {
	if depth == 0 {
		return nil
	}
	// present 3 times out of 4 to get reasonably bushy trees
	if rapid.IntRange(0, 3).Draw(t, "present") == 0 {
		return nil
	}
	v := values.Draw(t, "value")
	left := drawNode(t, values, depth-1)
	right := drawNode(t, values, depth-1)
	return tree.NewNode(v, left, right)
}

// NonEmptyTreeGenerator is TreeGenerator restricted to trees with a root.
func NonEmptyTreeGenerator(maxDepth int) *rapid.Generator[*tree.Tree[int]] {
	return TreeGenerator(maxDepth).Filter(func(t *tree.Tree[int]) bool {
		return !t.IsEmpty()
	})
}

// ref returns a pointer to x, for building level-order listings.
func ref[T any](x T) *T {
	return &x
}

// exampleTree returns
//
//	     1
//	   /   \
//	  2     3
//	 / \     \
//	4   5     6
func exampleTree() *tree.Tree[int] {
	return tree.New(
		tree.NewNode(1,
			tree.NewNode(2, tree.Leaf(4), tree.Leaf(5)),
			tree.NewNode(3, nil, tree.Leaf(6)),
		),
	)
}

// parents maps every node of t to its parent; the root maps to nil.
func parents(t *tree.Tree[int]) map[*tree.Node[int]]*tree.Node[int] {
	m := make(map[*tree.Node[int]]*tree.Node[int])
	if t.Root != nil {
		m[t.Root] = nil
	}
	for _, n := range t.Nodes() {
		if n.Left != nil {
			m[n.Left] = n
		}
		if n.Right != nil {
			m[n.Right] = n
		}
	}
	return m
}

// ancestors returns n followed by each of its ancestors up to the root.
func ancestors(parent map[*tree.Node[int]]*tree.Node[int], n *tree.Node[int]) []*tree.Node[int] {
	var path []*tree.Node[int]
	for n != nil {
		path = append(path, n)
		n = parent[n]
	}
	return path
}

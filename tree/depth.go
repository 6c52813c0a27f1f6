package tree

import (
	"dsa_trees/functional"

	"github.com/goose-lang/std"
)

// MinDepth returns the number of nodes on the shortest path from the root to a
// leaf, or 0 for the empty tree.
//
// A node with a single child is not a leaf, so its depth is measured through
// that child only.
func (t *Tree[T]) MinDepth() uint64 {
	return minDepth(t.root())
}

func minDepth[T Ordered](n *Node[T]) uint64 {
	if n == nil {
		return 0
	}
	if n.Left == nil {
		return std.SumAssumeNoOverflow(minDepth(n.Right), 1)
	}
	if n.Right == nil {
		return std.SumAssumeNoOverflow(minDepth(n.Left), 1)
	}
	d := functional.Min(minDepth(n.Left), minDepth(n.Right))
	return std.SumAssumeNoOverflow(d, 1)
}

// MaxDepth returns the number of nodes on the longest path from the root to a
// leaf, or 0 for the empty tree.
func (t *Tree[T]) MaxDepth() uint64 {
	return maxDepth(t.root())
}

func maxDepth[T Ordered](n *Node[T]) uint64 {
	if n == nil {
		return 0
	}
	d := functional.Max(maxDepth(n.Left), maxDepth(n.Right))
	return std.SumAssumeNoOverflow(d, 1)
}

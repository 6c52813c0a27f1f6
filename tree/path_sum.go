package tree

import (
	"dsa_trees/functional"
)

// pathSums summarizes a subtree for MaxSum.
type pathSums[T functional.Number] struct {
	// ext is the best sum of a downward path starting at the subtree root
	ext T
	// best is the best sum of any path inside the subtree
	best T
}

// MaxSum returns the largest sum along any path in t. A path may start and end
// at any node, never visits a node twice, and bends at most once (at its
// highest node). Returns ErrEmptyTree if t has no nodes.
func MaxSum[T functional.Number](t *Tree[T]) (T, error) {
	r := t.root()
	if r == nil {
		var zero T
		return zero, ErrEmptyTree
	}
	return maxSums(r).best, nil
}

// maxSums computes the sums for the non-nil subtree n bottom-up.
func maxSums[T functional.Number](n *Node[T]) pathSums[T] {
	var left, right pathSums[T]
	if n.Left != nil {
		left = maxSums(n.Left)
	}
	if n.Right != nil {
		right = maxSums(n.Right)
	}
	// negative extensions are pruned rather than taken
	l := functional.ClampZero(left.ext)
	r := functional.ClampZero(right.ext)

	s := pathSums[T]{
		ext:  functional.Add(n.Value, functional.Max(l, r)),
		best: functional.Add(n.Value, functional.Add(l, r)),
	}
	if n.Left != nil {
		s.best = functional.Max(s.best, left.best)
	}
	if n.Right != nil {
		s.best = functional.Max(s.best, right.best)
	}
	return s
}

package tree

// ancestry is what a subtree reports upward while searching for a common
// ancestor.
type ancestry[T Ordered] struct {
	// lca is set once both targets have been seen in the subtree
	lca  *Node[T]
	hasA bool
	hasB bool
}

// LowestCommonAncestor returns the deepest node that has both a and b as
// descendants, where a node counts as its own descendant. If a is an ancestor
// of b the answer is a.
//
// Returns ErrNodeNotFound if a or b is nil or not part of t.
func (t *Tree[T]) LowestCommonAncestor(a *Node[T], b *Node[T]) (*Node[T], error) {
	if a == nil || b == nil {
		return nil, ErrNodeNotFound
	}
	res := commonAncestor(t.root(), a, b)
	if res.lca == nil {
		return nil, ErrNodeNotFound
	}
	return res.lca, nil
}

func commonAncestor[T Ordered](n *Node[T], a *Node[T], b *Node[T]) ancestry[T] {
	if n == nil {
		return ancestry[T]{}
	}
	left := commonAncestor(n.Left, a, b)
	if left.lca != nil {
		return left
	}
	right := commonAncestor(n.Right, a, b)
	if right.lca != nil {
		return right
	}
	res := ancestry[T]{
		hasA: n == a || left.hasA || right.hasA,
		hasB: n == b || left.hasB || right.hasB,
	}
	if res.hasA && res.hasB {
		res.lca = n
	}
	return res
}

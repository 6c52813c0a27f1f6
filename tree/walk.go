package tree

import (
	"dsa_trees/heap"
)

// Nodes returns every node of t in pre-order (node, left subtree, right
// subtree).
func (t *Tree[T]) Nodes() []*Node[T] {
	var nodes []*Node[T]
	t.preOrder(func(n *Node[T]) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// Values returns the values of t in pre-order.
func (t *Tree[T]) Values() []T {
	var values []T
	t.preOrder(func(n *Node[T]) bool {
		values = append(values, n.Value)
		return true
	})
	return values
}

// Size returns the number of nodes in t.
func (t *Tree[T]) Size() int {
	var size = 0
	t.preOrder(func(n *Node[T]) bool {
		size++
		return true
	})
	return size
}

// Find returns the first node in pre-order whose value is v, or nil.
func (t *Tree[T]) Find(v T) *Node[T] {
	var found *Node[T]
	t.preOrder(func(n *Node[T]) bool {
		if n.Value == v {
			found = n
			return false
		}
		return true
	})
	return found
}

// preOrder calls visit on each node until visit returns false. It uses an
// explicit stack so deep trees do not exhaust the call stack.
func (t *Tree[T]) preOrder(visit func(n *Node[T]) bool) {
	s := heap.NewStack[*Node[T]]()
	if r := t.root(); r != nil {
		s.Push(r)
	}
	for {
		n, ok := s.Pop()
		if !ok {
			break
		}
		if !visit(n) {
			break
		}
		// right first so the left subtree is popped first
		if n.Right != nil {
			s.Push(n.Right)
		}
		if n.Left != nil {
			s.Push(n.Left)
		}
	}
}

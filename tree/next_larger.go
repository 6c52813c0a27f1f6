package tree

import (
	"dsa_trees/heap"
)

// NextLarger returns the smallest value in t that is strictly greater than
// lowerBound. The boolean is false if there is no such value.
//
// Every node is visited exactly once, in breadth-first order.
func (t *Tree[T]) NextLarger(lowerBound T) (T, bool) {
	var next T
	var found = false

	q := heap.NewQueue[*Node[T]]()
	if r := t.root(); r != nil {
		q.Push(r)
	}
	for {
		n, ok := q.Pop()
		if !ok {
			break
		}
		if n.Value > lowerBound && (!found || n.Value < next) {
			next = n.Value
			found = true
		}
		if n.Left != nil {
			q.Push(n.Left)
		}
		if n.Right != nil {
			q.Push(n.Right)
		}
	}
	return next, found
}

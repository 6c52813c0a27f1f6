package tree

import (
	"fmt"

	"dsa_trees/heap"
)

// FromLevelOrder builds a tree from a breadth-first listing of its values, in
// which nil marks a missing child and missing children have no children listed
// (the layout commonly used to write down example trees, e.g. [1,2,3,nil,nil,4,5]).
// Trailing nils may be omitted.
//
// Returns an error wrapping ErrMalformed if a value has no parent to attach to.
func FromLevelOrder[T Ordered](values []*T) (*Tree[T], error) {
	if len(values) == 0 || values[0] == nil {
		for i, v := range values {
			if v != nil {
				return nil, fmt.Errorf("%w: value at index %d has no parent", ErrMalformed, i)
			}
		}
		return New[T](nil), nil
	}

	root := Leaf(*values[0])
	parents := heap.NewQueue[*Node[T]]()
	parents.Push(root)
	var i = 1
	for i < len(values) {
		p, ok := parents.Pop()
		if !ok {
			break
		}
		if v := values[i]; v != nil {
			p.Left = Leaf(*v)
			parents.Push(p.Left)
		}
		i++
		if i < len(values) {
			if v := values[i]; v != nil {
				p.Right = Leaf(*v)
				parents.Push(p.Right)
			}
			i++
		}
	}
	for ; i < len(values); i++ {
		if values[i] != nil {
			return nil, fmt.Errorf("%w: value at index %d has no parent", ErrMalformed, i)
		}
	}
	return New(root), nil
}

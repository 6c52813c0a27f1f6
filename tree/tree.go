// Package tree implements an unordered binary tree and a handful of classic
// queries over it.
//
// Values are placed arbitrarily: nothing here assumes binary-search-tree
// ordering. Nodes are compared by identity (pointer equality), so two distinct
// nodes holding equal values are still different nodes.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Ordered is the constraint on node values: queries such as NextLarger need a
// total order.
type Ordered = constraints.Ordered

// A Node owns its children exclusively; subtrees are never shared.
type Node[T Ordered] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode returns a node with the given value and (possibly nil) children.
func NewNode[T Ordered](v T, left *Node[T], right *Node[T]) *Node[T] {
	return &Node[T]{Value: v, Left: left, Right: right}
}

// Leaf returns a node with no children.
func Leaf[T Ordered](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Tree is a rooted binary tree. The empty tree has a nil Root, and a nil *Tree
// behaves like the empty tree for every query.
type Tree[T Ordered] struct {
	Root *Node[T]
}

// New returns a tree rooted at root; a nil root gives the empty tree.
func New[T Ordered](root *Node[T]) *Tree[T] {
	return &Tree[T]{Root: root}
}

func (t *Tree[T]) root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.Root
}

// IsEmpty reports whether t has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.root() == nil
}

package tree

import (
	"dsa_trees/heap"

	"github.com/goose-lang/std"
)

// position records where a node sits: its depth below the root and its parent
// (nil for the root).
type position[T Ordered] struct {
	level  uint64
	parent *Node[T]
}

// AreCousins reports whether a and b are cousins: nodes at the same depth with
// different parents. Siblings, a node and itself, and nodes not in t are never
// cousins.
func (t *Tree[T]) AreCousins(a *Node[T], b *Node[T]) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	posA, okA, posB, okB := t.locate(a, b)
	if !okA || !okB {
		return false
	}
	return posA.level == posB.level && posA.parent != posB.parent
}

type frame[T Ordered] struct {
	node *Node[T]
	pos  position[T]
}

// locate finds the positions of a and b in a single depth-first pass, stopping
// as soon as both have been seen.
func (t *Tree[T]) locate(a *Node[T], b *Node[T]) (position[T], bool, position[T], bool) {
	var posA, posB position[T]
	var okA, okB = false, false

	s := heap.NewStack[frame[T]]()
	if r := t.root(); r != nil {
		s.Push(frame[T]{node: r})
	}
	for !(okA && okB) {
		f, ok := s.Pop()
		if !ok {
			break
		}
		if !okA && f.node == a {
			posA, okA = f.pos, true
		}
		if !okB && f.node == b {
			posB, okB = f.pos, true
		}
		next := position[T]{level: std.SumAssumeNoOverflow(f.pos.level, 1), parent: f.node}
		if f.node.Right != nil {
			s.Push(frame[T]{node: f.node.Right, pos: next})
		}
		if f.node.Left != nil {
			s.Push(frame[T]{node: f.node.Left, pos: next})
		}
	}
	return posA, okA, posB, okB
}

package tree

import "errors"

var (
	// ErrEmptyTree indicates a query that has no answer on an empty tree.
	ErrEmptyTree = errors.New("tree: empty tree")
	// ErrNodeNotFound indicates a node argument that is not part of the tree.
	ErrNodeNotFound = errors.New("tree: node not in tree")
	// ErrMalformed indicates an encoding that does not describe exactly one tree.
	ErrMalformed = errors.New("tree: malformed encoding")
	// ErrUnencodable indicates a tree holding a value the encoding cannot
	// represent exactly (invalid UTF-8, or a float that is not finite).
	ErrUnencodable = errors.New("tree: value cannot be encoded")
	// ErrTooLarge indicates an encoding with more nodes than the decoder allows.
	ErrTooLarge = errors.New("tree: too many nodes")
	// ErrTooDeep indicates an encoding deeper than the decoder allows.
	ErrTooDeep = errors.New("tree: too deep")
)

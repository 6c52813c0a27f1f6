package tree

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"dsa_trees/heap"

	"github.com/golang/glog"
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// The encoding of a tree is its null-padded pre-order: a JSON array listing
// each node's value before its left and then right subtree, with null standing
// in for every missing child. The empty tree encodes as [null], a single node
// 5 as [5,null,null]. A tree of n nodes always takes 2n+1 tokens.
//
// JSON cannot carry every Go value: strings must be valid UTF-8 and floats
// must be finite. Serialize rejects such trees with ErrUnencodable rather than
// emit an encoding that decodes to different values.

// Serialize encodes t as a null-padded pre-order JSON array.
func Serialize[T Ordered](t *Tree[T]) (string, error) {
	var tokens []*T
	var nodes = uint64(0)
	s := heap.NewStack[*Node[T]]()
	s.Push(t.root())
	for {
		n, ok := s.Pop()
		if !ok {
			break
		}
		if n == nil {
			tokens = append(tokens, nil)
			continue
		}
		v := n.Value
		if err := encodable(v); err != nil {
			return "", fmt.Errorf("%w: node %d: %w", ErrUnencodable, nodes, err)
		}
		nodes = std.SumAssumeNoOverflow(nodes, 1)
		tokens = append(tokens, &v)
		s.Push(n.Right)
		s.Push(n.Left)
	}
	primitive.Assert(uint64(len(tokens)) == 2*nodes+1)
	b, err := json.Marshal(tokens)
	if err != nil {
		return "", fmt.Errorf("tree: encode: %w", err)
	}
	return string(b), nil
}

// encodable checks that v survives a trip through JSON unchanged. Kinds are
// used rather than types so named string and float types are covered too.
func encodable(v any) error {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		if !utf8.ValidString(rv.String()) {
			return fmt.Errorf("string %q is not valid UTF-8", rv.String())
		}
	case reflect.Float32, reflect.Float64:
		if f := rv.Float(); math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("float %v is not finite", f)
		}
	}
	return nil
}

type decodeConfig struct {
	// zero means unlimited
	maxNodes uint64
	maxDepth uint64
}

// A DecodeOption limits what Deserialize accepts. Limits are enforced once the
// JSON text has been parsed into tokens, so they bound the tree that is built
// but not the memory spent parsing; callers should cap the input length
// themselves.
type DecodeOption func(*decodeConfig)

// WithMaxNodes rejects encodings holding more than n nodes with ErrTooLarge.
func WithMaxNodes(n uint64) DecodeOption {
	return func(c *decodeConfig) {
		c.maxNodes = n
	}
}

// WithMaxDepth rejects trees whose MaxDepth exceeds n with ErrTooDeep. This
// also bounds the decoder's recursion.
func WithMaxDepth(n uint64) DecodeOption {
	return func(c *decodeConfig) {
		c.maxDepth = n
	}
}

type decoder[T Ordered] struct {
	cfg    decodeConfig
	tokens []*T
	pos    int
	nodes  uint64
}

// Deserialize rebuilds a tree from the output of Serialize. Input that is not
// a JSON array of values and nulls, that ends before the tree is complete, or
// that continues after it is rejected with an error wrapping ErrMalformed; no
// partial tree is returned.
func Deserialize[T Ordered](s string, opts ...DecodeOption) (*Tree[T], error) {
	d := &decoder[T]{}
	for _, opt := range opts {
		opt(&d.cfg)
	}
	t, err := d.decode(s)
	if err != nil {
		glog.V(1).Infof("tree: rejected encoding of %d bytes: %v", len(s), err)
		return nil, err
	}
	glog.V(2).Infof("tree: decoded %d nodes", d.nodes)
	return t, nil
}

func (d *decoder[T]) decode(s string) (*Tree[T], error) {
	if err := json.Unmarshal([]byte(s), &d.tokens); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	// n nodes take exactly 2n+1 tokens, so oversized input is refused before
	// any node is built
	if d.cfg.maxNodes > 0 && uint64(len(d.tokens)) > 2*d.cfg.maxNodes+1 {
		return nil, fmt.Errorf("%w: %d tokens, limit is %d nodes", ErrTooLarge, len(d.tokens), d.cfg.maxNodes)
	}
	root, err := d.subtree(1)
	if err != nil {
		return nil, err
	}
	if d.pos != len(d.tokens) {
		return nil, fmt.Errorf("%w: %d trailing tokens", ErrMalformed, len(d.tokens)-d.pos)
	}
	primitive.Assert(uint64(d.pos) == 2*d.nodes+1)
	return New(root), nil
}

// subtree consumes the tokens of one subtree whose root would sit at the given
// depth (the tree's root is at depth 1).
func (d *decoder[T]) subtree(depth uint64) (*Node[T], error) {
	if d.pos >= len(d.tokens) {
		return nil, fmt.Errorf("%w: ran out of tokens at index %d", ErrMalformed, d.pos)
	}
	tok := d.tokens[d.pos]
	d.pos++
	if tok == nil {
		return nil, nil
	}
	if d.cfg.maxDepth > 0 && depth > d.cfg.maxDepth {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooDeep, d.cfg.maxDepth)
	}
	d.nodes = std.SumAssumeNoOverflow(d.nodes, 1)
	if d.cfg.maxNodes > 0 && d.nodes > d.cfg.maxNodes {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooLarge, d.cfg.maxNodes)
	}
	next := std.SumAssumeNoOverflow(depth, 1)
	left, err := d.subtree(next)
	if err != nil {
		return nil, err
	}
	right, err := d.subtree(next)
	if err != nil {
		return nil, err
	}
	return NewNode(*tok, left, right), nil
}

package tree_test

import (
	"testing"

	"dsa_trees/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLevelOrder(t *testing.T) {
	assert := assert.New(t)

	tr, err := tree.FromLevelOrder([]*int{ref(1), ref(2), ref(3), ref(4), ref(5), nil, ref(6)})
	require.NoError(t, err)
	assert.Equal(exampleTree(), tr)

	// trailing nils are optional
	tr2, err := tree.FromLevelOrder([]*int{ref(1), ref(2), ref(3), ref(4), ref(5), nil, ref(6), nil, nil})
	require.NoError(t, err)
	assert.Equal(tr, tr2)
}

func TestFromLevelOrderHoles(t *testing.T) {
	assert := assert.New(t)
	// children of a missing node are not listed
	tr, err := tree.FromLevelOrder([]*int{ref(1), nil, ref(2), ref(3)})
	require.NoError(t, err)
	assert.Equal(tree.New(tree.NewNode(1, nil, tree.NewNode(2, tree.Leaf(3), nil))), tr)
}

func TestFromLevelOrderEmpty(t *testing.T) {
	assert := assert.New(t)
	tr, err := tree.FromLevelOrder[int](nil)
	require.NoError(t, err)
	assert.True(tr.IsEmpty())

	tr, err = tree.FromLevelOrder([]*int{nil, nil})
	require.NoError(t, err)
	assert.True(tr.IsEmpty())
}

func TestFromLevelOrderOrphans(t *testing.T) {
	_, err := tree.FromLevelOrder([]*int{nil, ref(1)})
	assert.ErrorIs(t, err, tree.ErrMalformed)

	// 1 has two missing children, so 2 has nowhere to go
	_, err = tree.FromLevelOrder([]*int{ref(1), nil, nil, ref(2)})
	assert.ErrorIs(t, err, tree.ErrMalformed)
}

package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Run("valid trees", func(t *testing.T) {
		require.NoError(t, Check[int](nil))
		require.NoError(t, Check(leaf(1)))
		require.NoError(t, Check(branchNode(2, 2, leaf(1), leaf(3))))
		require.NoError(t, Check(branchNode(2, 2, leaf(2), leaf(2))))
	})

	t.Run("order violation", func(t *testing.T) {
		err := Check(branchNode(2, 2, leaf(3), nil))
		require.ErrorIs(t, err, ErrorOrderViolation)

		// 1 is fine next to 6 but sits in the right subtree of 4
		deep := branchNode(4, 3, leaf(2), branchNode(6, 2, leaf(1), nil))
		require.ErrorIs(t, Check(deep), ErrorOrderViolation)
	})

	t.Run("unbalanced", func(t *testing.T) {
		chain := branchNode(1, 3, nil, branchNode(2, 2, nil, leaf(3)))
		err := Check(chain)
		require.ErrorIs(t, err, ErrorUnbalanced)
		require.ErrorContains(t, err, "node 1 has balance factor -2")
	})

	t.Run("stale height", func(t *testing.T) {
		err := Check(branchNode(2, 1, leaf(1), nil))
		require.ErrorIs(t, err, ErrorHeightMismatch)
		require.ErrorContains(t, err, "node 2 has height 1, want 2")

		err = Check(branchNode(2, 2, &intNode{value: 1}, nil))
		require.ErrorIs(t, err, ErrorHeightMismatch)
	})
}

func TestTreeCheck(t *testing.T) {
	var tree Tree[int]
	for _, v := range []int{9, 4, 17, 3, 6, 22, 5, 7, 20} {
		tree.Insert(v)
		require.NoError(t, tree.Check())
	}
	// break the cached height behind the tree's back
	tree.Root().height++
	require.ErrorIs(t, tree.Check(), ErrorHeightMismatch)
}

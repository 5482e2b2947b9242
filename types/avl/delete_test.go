package avl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteRebalance(t *testing.T) {
	testCases := []struct {
		name     string
		values   []int
		remove   int
		preOrder []int
	}{
		{name: "leaf, no rotation", values: []int{20, 10, 30}, remove: 10, preOrder: []int{20, 30}},
		{name: "RR", values: []int{20, 10, 30, 40}, remove: 10, preOrder: []int{30, 20, 40}},
		{name: "RR with balanced child", values: []int{20, 10, 30, 25, 40}, remove: 10, preOrder: []int{30, 20, 25, 40}},
		{name: "RL", values: []int{20, 10, 30, 25}, remove: 10, preOrder: []int{25, 20, 30}},
		{name: "LL", values: []int{20, 10, 30, 5}, remove: 30, preOrder: []int{10, 5, 20}},
		{name: "LL with balanced child", values: []int{20, 10, 30, 5, 15}, remove: 30, preOrder: []int{10, 5, 20, 15}},
		{name: "LR", values: []int{20, 10, 30, 15}, remove: 30, preOrder: []int{15, 10, 20}},
		{name: "root with one child", values: []int{20, 30}, remove: 20, preOrder: []int{30}},
		{name: "root with two children", values: []int{20, 10, 30}, remove: 20, preOrder: []int{30, 10}},
		{name: "single node", values: []int{20}, remove: 20, preOrder: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := build(tc.values...)
			root = Delete(root, tc.remove)
			require.Equal(t, tc.preOrder, collect(root, PreOrder))
			require.NoError(t, Check(root))
		})
	}
}

func TestDeleteTwoChildren(t *testing.T) {
	root := build(5, 3, 8, 1, 4, 7, 9)
	require.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, collect(root, PreOrder))
	replaced := Find(root, 3)
	successor := Find(root, 4)

	root = Delete(root, 3)
	require.NoError(t, Check(root))
	require.Equal(t, []int{1, 4, 5, 7, 8, 9}, collect(root, InOrder))
	require.Equal(t, []int{5, 4, 1, 8, 7, 9}, collect(root, PreOrder))

	// the matched node stays in place with the successor's value
	require.Same(t, replaced, Find(root, 4))
	require.Equal(t, 4, replaced.Value())
	require.Same(t, replaced, root.Left())
	require.Nil(t, replaced.Right())
	require.Equal(t, 2, replaced.Height())
	require.NotSame(t, successor, Find(root, 4))
	require.False(t, Search(root, 3))
}

func TestDeleteAbsent(t *testing.T) {
	t.Run("empty tree", func(t *testing.T) {
		require.Nil(t, Delete[int](nil, 1))
	})

	t.Run("missing value", func(t *testing.T) {
		root := build(5, 3, 8, 1, 4, 7, 9)
		before := collect(root, PreOrder)
		for _, v := range []int{0, 2, 6, 10} {
			got := Delete(root, v)
			require.Same(t, root, got)
			require.Equal(t, before, collect(got, PreOrder))
		}
		require.NoError(t, Check(root))
	})
}

func TestDeleteIdempotent(t *testing.T) {
	once := Delete(build(50, 25, 75, 10, 30, 60, 90, 5), 25)
	twice := Delete(Delete(build(50, 25, 75, 10, 30, 60, 90, 5), 25), 25)
	require.Equal(t, collect(once, PreOrder), collect(twice, PreOrder))
	require.Equal(t, collect(once, InOrder), collect(twice, InOrder))
	require.NoError(t, Check(twice))
}

func TestDeleteDuplicates(t *testing.T) {
	root := build(5, 5, 5, 3, 7)
	root = Delete(root, 5)
	require.NoError(t, Check(root))
	require.Equal(t, []int{3, 5, 5, 7}, collect(root, InOrder))

	root = Delete(root, 5)
	require.True(t, Search(root, 5))
	root = Delete(root, 5)
	require.False(t, Search(root, 5))
	require.Equal(t, []int{3, 7}, collect(root, InOrder))
	require.NoError(t, Check(root))
}

func TestDeleteAll(t *testing.T) {
	values := []int{50, 20, 80, 10, 30, 70, 90, 5, 15, 25, 35, 65, 75, 85, 95, 1}
	root := build(values...)
	for i, v := range values {
		root = Delete(root, v)
		require.NoError(t, Check(root), "after deleting %d", v)
		require.Len(t, collect(root, InOrder), len(values)-i-1)
	}
	require.Nil(t, root)
}

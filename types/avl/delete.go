package avl

import (
	"gopkg.in/typ.v4"
)

// Delete removes one node holding value from the subtree rooted at root and
// returns the root of the rebalanced subtree. Deleting a value which is not
// in the tree is a no-op.
//
// A node with two children keeps its place in the tree: it takes the value
// of its in-order successor, and the successor node is removed instead.
func Delete[K typ.Ordered](root *Node[K], value K) *Node[K] {
	if root == nil {
		return nil
	}
	switch {
	case value < root.value:
		root.left = Delete(root.left, value)
	case value > root.value:
		root.right = Delete(root.right, value)
	default:
		if root.left == nil {
			return root.right
		}
		if root.right == nil {
			return root.left
		}
		successor := Minimum(root.right)
		root.value = successor.value
		root.right = Delete(root.right, successor.value)
	}
	root.height = root.calcHeight()

	// The removed value is gone, so the heavy child's own balance decides.
	balance := root.BalanceFactor()
	switch {
	case balance > 1 && root.left.BalanceFactor() >= 0:
		return root.rotateRight()
	case balance > 1:
		return root.rotateLeftRight()
	case balance < -1 && root.right.BalanceFactor() <= 0:
		return root.rotateLeft()
	case balance < -1:
		return root.rotateRightLeft()
	}
	return root
}

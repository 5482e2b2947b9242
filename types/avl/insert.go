package avl

import (
	"gopkg.in/typ.v4"
)

// Insert adds value to the subtree rooted at root and returns the root of
// the rebalanced subtree. Insert never fails.
//
// Values not less than a node go to its right, so a duplicate is stored
// as one more node.
func Insert[K typ.Ordered](root *Node[K], value K) *Node[K] {
	if root == nil {
		return newNode(value)
	}
	if value < root.value {
		root.left = Insert(root.left, value)
	} else {
		root.right = Insert(root.right, value)
	}
	root.height = root.calcHeight()

	// The inserted value tells which grandchild grew.
	balance := root.BalanceFactor()
	switch {
	case balance > 1 && value < root.left.value:
		return root.rotateRight()
	case balance > 1:
		return root.rotateLeftRight()
	case balance < -1 && value < root.right.value:
		return root.rotateRightLeft()
	case balance < -1:
		// equal values went right too
		return root.rotateLeft()
	}
	return root
}

package avl

import (
	"gopkg.in/typ.v4"
)

// Node is a single tree node. It owns its two children exclusively and caches
// the height of the subtree rooted at it (a leaf has height 1).
type Node[K typ.Ordered] struct {
	value  K
	left   *Node[K]
	right  *Node[K]
	height int
}

func newNode[K typ.Ordered](value K) *Node[K] {
	return &Node[K]{
		value:  value,
		height: 1,
	}
}

// Value returns value of the tree node.
func (n *Node[K]) Value() K {
	return n.value
}

// Left returns left child of the tree node or nil.
func (n *Node[K]) Left() *Node[K] {
	return n.left
}

// Right returns right child of the tree node or nil.
func (n *Node[K]) Right() *Node[K] {
	return n.right
}

// Height returns cached height of the subtree rooted at the node.
// Nil node has height 0.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor returns height of the left subtree minus height of the right one.
// Nil node is balanced.
func (n *Node[K]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

func (n *Node[K]) calcHeight() int {
	return 1 + max(n.left.Height(), n.right.Height())
}

////////////////////////////////////////////////////////////////
// Rotations
////////////////////////////////////////////////////////////////

// rotateLeft lifts the right child above n. Requires n.right != nil.
func (n *Node[K]) rotateLeft() *Node[K] {
	prevRoot := n
	newRoot := prevRoot.right
	prevRoot.right = newRoot.left
	newRoot.left = prevRoot
	// prevRoot is below newRoot now, so it goes first
	prevRoot.height = prevRoot.calcHeight()
	newRoot.height = newRoot.calcHeight()
	return newRoot
}

// rotateRight lifts the left child above n. Requires n.left != nil.
func (n *Node[K]) rotateRight() *Node[K] {
	prevRoot := n
	newRoot := prevRoot.left
	prevRoot.left = newRoot.right
	newRoot.right = prevRoot
	prevRoot.height = prevRoot.calcHeight()
	newRoot.height = newRoot.calcHeight()
	return newRoot
}

// rotateLeftRight fixes the LR shape: left child is right heavy.
func (n *Node[K]) rotateLeftRight() *Node[K] {
	n.left = n.left.rotateLeft()
	return n.rotateRight()
}

// rotateRightLeft fixes the RL shape: right child is left heavy.
func (n *Node[K]) rotateRightLeft() *Node[K] {
	n.right = n.right.rotateRight()
	return n.rotateLeft()
}

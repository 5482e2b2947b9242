package avl

import (
	"gopkg.in/typ.v4"
)

// Search reports whether value is stored in the subtree rooted at root.
func Search[K typ.Ordered](root *Node[K], value K) bool {
	return Find(root, value) != nil
}

// Find returns the first node holding value met on the way down from root,
// or nil if there is none.
func Find[K typ.Ordered](root *Node[K], value K) *Node[K] {
	current := root
	for current != nil {
		switch {
		case value < current.value:
			current = current.left
		case value > current.value:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// Minimum returns the leftmost node of the subtree rooted at root.
// The root must not be nil.
func Minimum[K typ.Ordered](root *Node[K]) *Node[K] {
	current := root
	for current.left != nil {
		current = current.left
	}
	return current
}

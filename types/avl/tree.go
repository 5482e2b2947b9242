package avl

import (
	"io"
	"iter"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for ordered Go types (numbers & strings),
// implemented as an AVL tree. It holds nothing but the root node.
// The zero value is an empty tree ready to use.
type Tree[K typ.Ordered] struct {
	root *Node[K]
}

// Root returns the root node, nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Len counts nodes of the tree. It walks the whole tree.
func (t *Tree[K]) Len() int {
	count := 0
	for range Traverse(t.root, PreOrder) {
		count++
	}
	return count
}

// Height returns height of the tree, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	return t.root.Height()
}

// Insert adds value to the tree. Duplicates are kept as separate nodes.
func (t *Tree[K]) Insert(value K) {
	t.root = Insert(t.root, value)
}

// Delete removes one occurrence of value from the tree if there is any.
func (t *Tree[K]) Delete(value K) {
	t.root = Delete(t.root, value)
}

// Contains checks if value exists in the tree.
func (t *Tree[K]) Contains(value K) bool {
	return Search(t.root, value)
}

// Find finds the node holding value, nil if there is none.
func (t *Tree[K]) Find(value K) *Node[K] {
	return Find(t.root, value)
}

// Minimum returns the node with the lowest value, nil for an empty tree.
func (t *Tree[K]) Minimum() *Node[K] {
	if t.root == nil {
		return nil
	}
	return Minimum(t.root)
}

// Traverse returns a sequence of the tree values in the given order.
func (t *Tree[K]) Traverse(order Order) iter.Seq[K] {
	return Traverse(t.root, order)
}

// Clear will reset this tree to an empty tree.
func (t *Tree[K]) Clear() {
	t.root = nil
}

// Check verifies the tree invariants, see Check.
func (t *Tree[K]) Check() error {
	return Check(t.root)
}

// Print writes the tree drawing to w, see Print.
func (t *Tree[K]) Print(w io.Writer) error {
	return Print(w, t.root)
}

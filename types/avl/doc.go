// Package avl implements an AVL tree (Adelson-Velsky and Landis tree),
// a self-balancing binary search tree for ordered Go types (numbers & strings).
//
// The engine is a set of functions over a root node: Insert and Delete
// take the current root and return the possibly new one, since rebalancing
// may change which node is on top. A nil root is an empty tree. Tree wraps
// the root for callers that prefer methods.
//
// Heights of the two subtrees of every node differ by at most one, which
// keeps the tree height and so every operation at O(log n).
//
// Note: a tree is not safe for concurrent use. Rotations update several
// nodes at once, so any goroutine sharing a tree must hold an exclusive
// lock around every Insert and Delete.
package avl

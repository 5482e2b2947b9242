package avl

import (
	"fmt"
	"iter"
	"strings"

	"gopkg.in/typ.v4"
)

// Order selects the sequence in which Traverse visits the nodes.
type Order int8

const (
	// PreOrder visits each node before its left and then its right branch.
	// Inserting values back in this order rebuilds exactly the same layout.
	PreOrder Order = iota
	// InOrder visits the left branch, the node and then the right branch,
	// which yields values in sorted order.
	InOrder
	// PostOrder visits both branches before the node itself.
	PostOrder
)

// String returns the name printed for the order.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	case PostOrder:
		return "post-order"
	}
	return fmt.Sprintf("Order(%d)", int8(o))
}

// ParseOrder parses order names like "pre", "in-order" or "PostOrder".
func ParseOrder(s string) (Order, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimSuffix(name, "order"), "-")
	switch name {
	case "pre":
		return PreOrder, nil
	case "in":
		return InOrder, nil
	case "post":
		return PostOrder, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrorUnknownOrder, s)
}

// Traverse returns a sequence of values of the subtree rooted at root in the
// given order. The sequence reads the tree lazily and may be ranged over again
// to restart it, but the tree must not be changed while ranging over it.
// Unknown order yields nothing.
func Traverse[K typ.Ordered](root *Node[K], order Order) iter.Seq[K] {
	return func(yield func(K) bool) {
		switch order {
		case PreOrder:
			root.iteratePreOrder(yield)
		case InOrder:
			root.iterateInOrder(yield)
		case PostOrder:
			root.iteratePostOrder(yield)
		}
	}
}

// iterate* return false once yield asked to stop.

func (n *Node[K]) iteratePreOrder(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.value) &&
		n.left.iteratePreOrder(yield) &&
		n.right.iteratePreOrder(yield)
}

func (n *Node[K]) iterateInOrder(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.iterateInOrder(yield) &&
		yield(n.value) &&
		n.right.iterateInOrder(yield)
}

func (n *Node[K]) iteratePostOrder(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.iteratePostOrder(yield) &&
		n.right.iteratePostOrder(yield) &&
		yield(n.value)
}

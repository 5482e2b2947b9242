package avl

import (
	"fmt"

	"gopkg.in/typ.v4"
)

// Check walks the subtree rooted at root and returns the first broken
// invariant found: search order (ErrorOrderViolation), balance
// (ErrorUnbalanced) or a cached height that differs from the real one
// (ErrorHeightMismatch). Nil means the subtree is a valid AVL tree.
//
// Equal values may sit on either side of each other after rotations,
// so the order check only requires an in-order walk to never decrease.
func Check[K typ.Ordered](root *Node[K]) error {
	_, err := check(root, nil, nil)
	return err
}

// check returns the real height of the subtree; low and high bound the values
// allowed in it.
func check[K typ.Ordered](n *Node[K], low, high *Node[K]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if low != nil && typ.Compare(n.value, low.value) < 0 {
		return 0, fmt.Errorf("%w: %v is in the right subtree of %v", ErrorOrderViolation, n.value, low.value)
	}
	if high != nil && typ.Compare(n.value, high.value) > 0 {
		return 0, fmt.Errorf("%w: %v is in the left subtree of %v", ErrorOrderViolation, n.value, high.value)
	}
	leftHeight, err := check(n.left, low, n)
	if err != nil {
		return 0, err
	}
	rightHeight, err := check(n.right, n, high)
	if err != nil {
		return 0, err
	}
	height := 1 + max(leftHeight, rightHeight)
	if n.height != height {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrorHeightMismatch, n.value, n.height, height)
	}
	if balance := leftHeight - rightHeight; balance < -1 || balance > 1 {
		return 0, fmt.Errorf("%w: node %v has balance factor %+d", ErrorUnbalanced, n.value, balance)
	}
	return height, nil
}

package avl

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/typ.v4"
)

// to control the print routine
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Print writes an ASCII drawing of the subtree rooted at root to w, turned
// on its side: right branches above, left branches below. Every node shows
// its value, cached height and balance factor. Nothing is written for nil root.
//
//	       /------+ 30 [1/+0]
//	|------+ 20 [2/+0]
//	       \------+ 10 [1/+0]
func Print[K typ.Ordered](w io.Writer, root *Node[K]) error {
	if root == nil {
		return nil
	}
	var sb strings.Builder
	printTree(&sb, root, "", branchRoot)
	_, err := io.WriteString(w, sb.String())
	return err
}

func printTree[K typ.Ordered](sb *strings.Builder, n *Node[K], prefix string, br branch) {
	if n.right != nil {
		t := "       "
		if br == branchLeft {
			t = "|      "
		}
		printTree(sb, n.right, prefix+t, branchRight)
	}
	switch br {
	case branchRoot:
		fmt.Fprintf(sb, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(sb, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(sb, "%s/------+ ", prefix)
	}
	fmt.Fprintf(sb, "%v [%d/%+d]\n", n.value, n.height, n.BalanceFactor())
	if n.left != nil {
		t := "       "
		if br == branchRight {
			t = "|      "
		}
		printTree(sb, n.left, prefix+t, branchLeft)
	}
}

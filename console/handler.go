package console

import (
	"github.com/cryptonstudio/crypton-avl/types/avl"
)

//go:generate mockgen -destination=mocks/interfaces.go -package=mockconsole . Handler
type Handler interface {

	// Tree handlers
	// NOTE: Tree handlers are called AFTER the tree is rebalanced, root is the new root.
	OnInsert(root *avl.Node[int], value int)
	OnDelete(root *avl.Node[int], value int)

	// Session handlers
	// NOTE: value is the non-positive input which ended the session.
	OnExit(value int)
	OnEndOfInput()
}

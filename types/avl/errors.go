package avl

import (
	"errors"
)

var (
	ErrorUnknownOrder   = errors.New("unknown traversal order")
	ErrorOrderViolation = errors.New("tree node breaks search order")
	ErrorUnbalanced     = errors.New("tree node is unbalanced")
	ErrorHeightMismatch = errors.New("tree node height is stale")
)

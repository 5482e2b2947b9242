package console

import (
	"errors"
)

// Errors used by the package.
var (
	ErrorInvalidInput = errors.New("input is not an integer")
	ErrorNonPositive  = errors.New("value must be greater than 0")
)

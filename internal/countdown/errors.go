package countdown

import "errors"

var (
	ErrNothingToRun = errors.New("countdown has no time remaining")
	ErrDisposed     = errors.New("countdown engine disposed")
)

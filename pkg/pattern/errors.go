package pattern

import "errors"

var (
	ErrCompile = errors.New("failed to compile pattern")
	ErrMatch   = errors.New("failed to evaluate pattern")
)

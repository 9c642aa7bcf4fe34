package buffer

import "errors"

// Errors returned by buffer operations.
var (
	ErrLineOutOfRange     = errors.New("line out of range")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrOffsetOutOfRange   = errors.New("offset out of range")
	ErrRangeInvalid       = errors.New("invalid range")
)

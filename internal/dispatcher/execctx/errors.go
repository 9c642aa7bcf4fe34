package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingHost indicates the motion host is required but not set.
	ErrMissingHost = errors.New("execution context: host is required")
)

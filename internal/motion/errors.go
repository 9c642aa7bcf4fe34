package motion

import "errors"

// ErrInvalidDirection is returned for a Direction other than Forward or Backward.
var ErrInvalidDirection = errors.New("motion: invalid direction")

package alignment

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidPolicy marks an evidence volume table that is not a
	// contiguous, monotonic cover of all counts from zero.
	ErrInvalidPolicy = errors.New("invalid evidence policy")
)

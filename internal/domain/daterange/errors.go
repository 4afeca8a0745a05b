package daterange

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidRange marks a token that matches no supported range
	// pattern, or an explicit range with start after end.
	ErrInvalidRange = errors.New("invalid date range")
)

package snapshot

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrReadSnapshot wraps filesystem failures.
	ErrReadSnapshot = errors.New("read snapshot failed")
	// ErrBadSnapshot marks a document the parser cannot accept.
	ErrBadSnapshot = errors.New("malformed snapshot")
)

package policy

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrReadPolicy wraps filesystem failures.
	ErrReadPolicy = errors.New("read policy failed")
	// ErrBadPolicy marks a document that is not valid policy YAML.
	// Band-table partition violations surface as band.ErrScoreBandConfig.
	ErrBadPolicy = errors.New("malformed policy")
)

package band

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrScoreBandConfig marks a band table that does not partition
	// [0,100]. Callers must treat it as fatal at startup.
	ErrScoreBandConfig = errors.New("invalid score band table")
)

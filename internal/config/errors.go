package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidConfig marks a loaded configuration with a bad value.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig wraps failures reading the file or env layers.
	ErrLoadConfig = errors.New("load config failed")
)

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPrepareConfigs indicates invalid log directory settings
	// (for example, an empty path or zero mode).
	ErrInvalidPrepareConfigs = errors.New("invalid prepare configuration")
	// ErrInvalidServerConfigs indicates invalid server hand-off settings
	// (for example, missing command or non-positive worker count).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidPreinitConfigs indicates invalid pre-start step settings
	// (for example, a wait URL with a zero probe budget).
	ErrInvalidPreinitConfigs = errors.New("invalid preinit configuration")
)

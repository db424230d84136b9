package config

import "errors"

// Validation errors returned by config validation when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidValidationConfigs indicates invalid validation engine
	// settings (for example, a fuzzy threshold outside 0-100).
	ErrInvalidValidationConfigs = errors.New("invalid validation configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a non-positive autosave interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

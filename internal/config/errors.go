package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration section is incomplete or invalid. Each reported problem
// wraps the sentinel of the section it belongs to.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a malformed listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a negative interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

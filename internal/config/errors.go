package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates invalid key store settings (empty
	// address, non-positive timeout, or endpoint paths not starting with "/").
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidLogConfigs indicates an empty log file path.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings,
	// specifically a field-encryption secret that is missing, is not valid
	// hex, or does not decode to 32 bytes.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs indicates invalid managed-service settings
	// (for example, a missing Firebase project id).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

package config

import (
	"encoding/hex"
	"time"
)

// StructuredConfig is the top-level configuration container for the quote
// API. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the field-encryption secret and
	// the allowed CORS origin.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the managed identity and document
	// database services.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SecretKey is the hex encoding of the 256-bit key used for field-level
	// encryption of sensitive quote request fields. Must decode to exactly
	// 32 bytes. Must be kept confidential.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// AllowedOrigin is the single origin allowed by the CORS policy on
	// /api/* routes. When empty the CORS headers are silently omitted;
	// startup is not blocked.
	// Env: APP_ALLOWED_ORIGIN
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the external managed services that
// hold all durable state.
type Storage struct {
	// Firebase holds the project and credential settings shared by the
	// identity provider (Firebase Auth) and the document database
	// (Cloud Firestore).
	Firebase Firebase `envPrefix:"FIREBASE_"`
}

// Firebase holds connection settings for the Firebase project.
type Firebase struct {
	// ProjectID is the Firebase/GCP project id.
	// Env: STORAGE_FIREBASE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// CredentialsFile is the path to a service account JSON key file.
	// When empty, application default credentials are used.
	// Env: STORAGE_FIREBASE_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DecodeSecretKey hex-decodes the configured field-encryption secret.
// Returns ErrInvalidAppConfigs (wrapped) if the value is missing, is not
// valid hex, or does not decode to 32 bytes.
func (a App) DecodeSecretKey() ([]byte, error) {
	key, err := hex.DecodeString(a.SecretKey)
	if err != nil || len(key) != 32 {
		return nil, ErrInvalidAppConfigs
	}

	return key, nil
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

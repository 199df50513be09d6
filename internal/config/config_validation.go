package config

const defaultHTTPAddress = ":8080"

// applyDefaults fills in values for settings that may reasonably be omitted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A malformed or missing field-encryption secret and a missing Firebase
// project id are fatal. A missing allowed origin is NOT: the CORS headers
// are silently omitted in that case, matching the documented contract.
func (cfg *StructuredConfig) validate() error {
	if _, err := cfg.App.DecodeSecretKey(); err != nil {
		return err
	}

	if cfg.Storage.Firebase.ProjectID == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

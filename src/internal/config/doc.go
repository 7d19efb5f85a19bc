// Package config handles configuration file parsing and validation for octetpost.
//
// The configuration file is TOML. Every section is optional; missing values
// are filled with defaults by ApplyDefaults, so running without a file is
// equivalent to an empty file.
//
// # Configuration Structure
//
//   - server: listen address and HTTP timeouts
//   - greeting: body of GET /
//   - redirect: target and status code of the redirect route
//   - manifest: line template and body size limit of the manifest route
//   - metrics: prometheus exporter toggle and path
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/octetpost.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// Validation reports every failing field at once, using the toml key path
// (for example "manifest.line_template") in messages.
package config

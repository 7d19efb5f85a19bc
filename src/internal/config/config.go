package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/octetpost/octetpost/src/internal/errors"
	"github.com/octetpost/octetpost/src/internal/log"
	"github.com/octetpost/octetpost/src/internal/manifest"
)

const (
	DefaultBindAddress      = "0.0.0.0:8000"
	DefaultGreeting         = "Hello, bird!"
	DefaultRedirectLocation = "https://www.youtube.com/watch?v=9Gc4QTqslN4"
	DefaultMaxBodyBytes     = 1 << 20
	DefaultMetricsPath      = "/metrics"
)

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadConfig reads the TOML file at configPath and fills defaults for
// every missing setting. An empty path yields Default().
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		log.Debugf("No configuration file given, using defaults")
		return Default(), nil
	}

	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, errors.NewConfigError("failed to get absolute path", err)
		} else {
			configFile = path
		}
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.NewConfigError("configuration file not found: "+configFile, nil)
		}
		return nil, errors.NewConfigError("failed to read config file", err)
	}

	cfg, err := ParseConfig(content)
	if err != nil {
		return nil, err
	}
	cfg._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)

	return cfg, nil
}

// ParseConfig decodes TOML content and fills defaults.
func ParseConfig(content []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			log.Errorf("%s", derr.String())
			row, col := derr.Position()
			return nil, errors.NewConfigError("failed to parse config file",
				fmt.Errorf("error at line %d, column %d: %w", row, col, err))
		}
		return nil, errors.NewConfigError("failed to parse config file", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills every unset section and field with its default value.
func (c *Config) ApplyDefaults() {
	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Server.BindAddress == "" {
		c.Server.BindAddress = DefaultBindAddress
	}
	if c.Server.ReadTimeoutSeconds == 0 {
		c.Server.ReadTimeoutSeconds = 15
	}
	if c.Server.WriteTimeoutSeconds == 0 {
		c.Server.WriteTimeoutSeconds = 15
	}
	if c.Server.IdleTimeoutSeconds == 0 {
		c.Server.IdleTimeoutSeconds = 60
	}
	if c.Server.ShutdownTimeoutSeconds == 0 {
		c.Server.ShutdownTimeoutSeconds = 30
	}

	if c.Greeting == nil {
		c.Greeting = &GreetingConfig{}
	}
	if c.Greeting.Text == "" {
		c.Greeting.Text = DefaultGreeting
	}

	if c.Redirect == nil {
		c.Redirect = &RedirectConfig{}
	}
	if c.Redirect.Location == "" {
		c.Redirect.Location = DefaultRedirectLocation
	}
	if c.Redirect.Status == 0 {
		c.Redirect.Status = 302
	}

	if c.Manifest == nil {
		c.Manifest = &ManifestConfig{}
	}
	if c.Manifest.LineTemplate == "" {
		c.Manifest.LineTemplate = manifest.DefaultLineTemplate
	}
	if c.Manifest.MaxBodyBytes == 0 {
		c.Manifest.MaxBodyBytes = DefaultMaxBodyBytes
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Enabled == nil {
		enabled := true
		c.Metrics.Enabled = &enabled
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// SerializeConfig encodes the configuration as TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}

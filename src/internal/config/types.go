package config

type Config struct {
	// Server holds HTTP listener settings.
	Server *ServerConfig `toml:"server"`
	// Greeting is served at the root path.
	Greeting *GreetingConfig `toml:"greeting"`
	// Redirect is served at /redirect-example.
	Redirect *RedirectConfig `toml:"redirect"`
	// Manifest holds manifest endpoint settings.
	Manifest *ManifestConfig `toml:"manifest"`
	// Metrics holds prometheus exporter settings.
	Metrics *MetricsConfig `toml:"metrics"`

	_absConfigFilePath string
}

type ServerConfig struct {
	// BindAddress is the host:port the HTTP server listens on (default: 0.0.0.0:8000).
	BindAddress string `toml:"bind_address" validate:"required,hostport"`
	// ReadTimeoutSeconds limits reading a whole request (default: 15).
	ReadTimeoutSeconds int `toml:"read_timeout_seconds" validate:"gte=1"`
	// WriteTimeoutSeconds limits writing a response (default: 15).
	WriteTimeoutSeconds int `toml:"write_timeout_seconds" validate:"gte=1"`
	// IdleTimeoutSeconds limits keep-alive idle time (default: 60).
	IdleTimeoutSeconds int `toml:"idle_timeout_seconds" validate:"gte=1"`
	// ShutdownTimeoutSeconds is the graceful shutdown deadline (default: 30).
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds" validate:"gte=1"`
}

type GreetingConfig struct {
	// Text is the body of GET / (default: "Hello, bird!").
	Text string `toml:"text" validate:"required"`
}

type RedirectConfig struct {
	// Location is the redirect target.
	Location string `toml:"location" validate:"required,url"`
	// Status is the redirect status code (default: 302).
	Status int `toml:"status" validate:"oneof=301 302 303 307 308"`
}

type ManifestConfig struct {
	// LineTemplate renders a single order. Available variables: {{item}}, {{quantity}}.
	LineTemplate string `toml:"line_template" validate:"required,line_template"`
	// MaxBodyBytes caps the accepted request body size (default: 1 MiB).
	MaxBodyBytes int64 `toml:"max_body_bytes" validate:"gte=1"`
}

type MetricsConfig struct {
	// Enabled exposes prometheus metrics (default: true).
	Enabled *bool `toml:"enabled"`
	// Path is where metrics are served (default: /metrics).
	Path string `toml:"path" validate:"required,startswith=/"`
}

// IsEnabled reports whether metrics are exposed. Unset means enabled.
func (m *MetricsConfig) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// GetAbsConfigFilePath returns the absolute path the config was loaded from,
// or an empty string for built-in defaults.
func (c *Config) GetAbsConfigFilePath() string {
	return c._absConfigFilePath
}

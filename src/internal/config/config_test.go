package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/octetpost/octetpost/src/internal/errors"
)

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.Server.BindAddress != DefaultBindAddress {
		t.Errorf("Expected bind address %s, got %s", DefaultBindAddress, cfg.Server.BindAddress)
	}
	if cfg.Greeting.Text != "Hello, bird!" {
		t.Errorf("Expected default greeting, got %q", cfg.Greeting.Text)
	}
	if cfg.Redirect.Status != 302 {
		t.Errorf("Expected redirect status 302, got %d", cfg.Redirect.Status)
	}
	if cfg.Manifest.LineTemplate != "{{item}}: {{quantity}}" {
		t.Errorf("Unexpected default line template %q", cfg.Manifest.LineTemplate)
	}
	if !cfg.Metrics.IsEnabled() {
		t.Error("Expected metrics to be enabled by default")
	}
	if cfg.GetAbsConfigFilePath() != "" {
		t.Errorf("Expected no config file path, got %s", cfg.GetAbsConfigFilePath())
	}

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected defaults to be valid: %v", err)
	}
}

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}

	if !errors.Is(err, apperrors.New(apperrors.ErrCodeConfig, "")) {
		t.Errorf("Expected config error, got %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.toml")

	invalidTOML := `[server
	bind_address = "127.0.0.1:8000"`

	err := os.WriteFile(configFile, []byte(invalidTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = LoadConfig(configFile)
	if err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "valid.toml")

	validTOML := `[server]
bind_address = "127.0.0.1:9000"

[greeting]
text = "Hi"

[manifest]
line_template = "{{quantity}} x {{item}}"

[metrics]
enabled = false`

	err := os.WriteFile(configFile, []byte(validTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if cfg.Server.BindAddress != "127.0.0.1:9000" {
		t.Errorf("Expected bind_address to be '127.0.0.1:9000', got %s", cfg.Server.BindAddress)
	}
	if cfg.Server.ReadTimeoutSeconds != 15 {
		t.Errorf("Expected default read timeout, got %d", cfg.Server.ReadTimeoutSeconds)
	}
	if cfg.Greeting.Text != "Hi" {
		t.Errorf("Expected greeting 'Hi', got %q", cfg.Greeting.Text)
	}
	if cfg.Manifest.LineTemplate != "{{quantity}} x {{item}}" {
		t.Errorf("Unexpected line template %q", cfg.Manifest.LineTemplate)
	}
	if cfg.Metrics.IsEnabled() {
		t.Error("Expected metrics to be disabled")
	}
	if cfg.GetAbsConfigFilePath() != configFile {
		t.Errorf("Expected config path %s, got %s", configFile, cfg.GetAbsConfigFilePath())
	}

	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected config to be valid: %v", err)
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configFile, []byte("[greeting]\ntext = \"Hey\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	cfg, err := LoadConfig("config.toml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !filepath.IsAbs(cfg.GetAbsConfigFilePath()) {
		t.Errorf("Expected absolute config path, got %s", cfg.GetAbsConfigFilePath())
	}
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(cfg *Config)
		fieldPath string
	}{
		{
			name:      "bind address without port",
			modify:    func(cfg *Config) { cfg.Server.BindAddress = "localhost" },
			fieldPath: "server.bind_address",
		},
		{
			name:      "bind address with port out of range",
			modify:    func(cfg *Config) { cfg.Server.BindAddress = "0.0.0.0:70000" },
			fieldPath: "server.bind_address",
		},
		{
			name:      "negative timeout",
			modify:    func(cfg *Config) { cfg.Server.ReadTimeoutSeconds = -1 },
			fieldPath: "server.read_timeout_seconds",
		},
		{
			name:      "redirect status not a redirect",
			modify:    func(cfg *Config) { cfg.Redirect.Status = 200 },
			fieldPath: "redirect.status",
		},
		{
			name:      "redirect location not a URL",
			modify:    func(cfg *Config) { cfg.Redirect.Location = "not a url" },
			fieldPath: "redirect.location",
		},
		{
			name:      "line template without quantity",
			modify:    func(cfg *Config) { cfg.Manifest.LineTemplate = "{{item}}" },
			fieldPath: "manifest.line_template",
		},
		{
			name:      "metrics path without slash",
			modify:    func(cfg *Config) { cfg.Metrics.Path = "metrics" },
			fieldPath: "metrics.path",
		},
		{
			name:      "missing section",
			modify:    func(cfg *Config) { cfg.Greeting = nil },
			fieldPath: "greeting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.ValidateConfig()
			if err == nil {
				t.Fatal("Expected validation error")
			}

			var validationErrors ValidationErrors
			if !errors.As(err, &validationErrors) {
				t.Fatalf("Expected ValidationErrors, got %T", err)
			}

			found := false
			for _, ve := range validationErrors {
				if ve.FieldPath == tt.fieldPath {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected error for %s, got %v", tt.fieldPath, err)
			}
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{
		{FieldPath: "server.bind_address", Message: "field is required"},
		{FieldPath: "redirect.status", Message: "must be one of: 301 302"},
	}

	msg := ve.Error()
	if !strings.Contains(msg, "2 error(s)") {
		t.Errorf("Expected error count in message, got %q", msg)
	}
	if !strings.Contains(msg, "1. server.bind_address: field is required") {
		t.Errorf("Expected first error in message, got %q", msg)
	}
}

func TestSerializeConfig(t *testing.T) {
	buf, err := Default().SerializeConfig()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out := buf.String()
	for _, key := range []string{"bind_address", "line_template", "Hello, bird!"} {
		if !strings.Contains(out, key) {
			t.Errorf("Expected serialized config to contain %q, got:\n%s", key, out)
		}
	}
}

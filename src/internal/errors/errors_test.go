package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "error without cause",
			err:      &Error{Code: ErrCodeConfig, Message: "invalid configuration"},
			expected: "[CONFIG_ERROR] invalid configuration",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeManifest, "invalid manifest", errors.New("missing field")),
			expected: "[MANIFEST_ERROR] invalid manifest: missing field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Detail(t *testing.T) {
	err := NewValidationError("query parameter 'from' is invalid", errors.New("unexpected character"))
	want := "query parameter 'from' is invalid: unexpected character"
	if got := err.Detail(); got != want {
		t.Errorf("Detail() = %q, want %q", got, want)
	}

	if got := New(ErrCodeNotImplemented, "not yet").Detail(); got != "not yet" {
		t.Errorf("Detail() = %q, want %q", got, "not yet")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "wrapper", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Code: ErrCodeManifest, Message: "test error"}
	err2 := &Error{Code: ErrCodeManifest, Message: "another error"}
	err3 := &Error{Code: ErrCodeUnsupportedMediaType, Message: "media type"}

	if !err1.Is(err2) {
		t.Errorf("Expected errors with same code to match")
	}

	if err1.Is(err3) {
		t.Errorf("Expected errors with different codes to not match")
	}

	wrapped := NewManifestError("decode failed", errors.New("boom"))
	if !errors.Is(wrapped, err2) {
		t.Errorf("Expected errors.Is to match on code")
	}
}

func TestNewConfigError(t *testing.T) {
	cause := errors.New("file not found")
	err := NewConfigError("failed to load config", cause)

	if err.Code != ErrCodeConfig {
		t.Errorf("Expected code %v, got %v", ErrCodeConfig, err.Code)
	}

	if err.Message != "failed to load config" {
		t.Errorf("Expected message 'failed to load config', got %v", err.Message)
	}

	if err.Cause != cause {
		t.Errorf("Expected cause to be preserved")
	}
}

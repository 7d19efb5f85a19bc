package config

import (
	stderrors "errors"
	"fmt"
	"net"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/octetpost/octetpost/src/internal/manifest"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "url":
		return "must be a valid URL"
	case "startswith":
		return fmt.Sprintf("must start with %q", e.Param())
	case "hostport":
		return "must be in format 'host:port' with a port between 1 and 65535"
	case "line_template":
		return "must reference both {{" + manifest.TemplateItem + "}} and {{" + manifest.TemplateQuantity + "}}"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	FieldPath string // Dot-notation field path (e.g., "server.bind_address")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("hostport", validateHostPort); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("line_template", validateLineTemplate); err != nil {
		panic(err)
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateConfig validates every section and returns all validation errors at once.
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	sections := []struct {
		name  string
		value interface{}
		isNil bool
	}{
		{"server", c.Server, c.Server == nil},
		{"greeting", c.Greeting, c.Greeting == nil},
		{"redirect", c.Redirect, c.Redirect == nil},
		{"manifest", c.Manifest, c.Manifest == nil},
		{"metrics", c.Metrics, c.Metrics == nil},
	}

	for _, section := range sections {
		if section.isNil {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: section.name,
				Message:   fmt.Sprintf("configuration must contain '%s' section", section.name),
			})
			continue
		}
		if err := validate.Struct(section.value); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, section.name)...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if stderrors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				fieldPath = fieldPrefix + "." + e.Field()
			}

			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

// Custom validator: host:port with a numeric port, host may be empty
func validateHostPort(fl validator.FieldLevel) bool {
	_, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}
	p, err := strconv.Atoi(port)
	return err == nil && p >= 1 && p <= 65535
}

// Custom validator: manifest line template must reference every order field
func validateLineTemplate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return strings.Contains(value, "{{"+manifest.TemplateItem+"}}") &&
		strings.Contains(value, "{{"+manifest.TemplateQuantity+"}}")
}

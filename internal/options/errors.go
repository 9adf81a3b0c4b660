// Package options defines the option model that drives a generation run:
// the partial, mergeable Options used by flags, profiles and prompts, and
// the validated Resolved value consumed by the synthesizers.
package options

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for option validation.
var (
	// ErrInvalidOptions is matched by every ValidationErrors value.
	ErrInvalidOptions = errors.New("options: invalid options")

	// ErrInvalidName indicates an empty or non-portable project name.
	ErrInvalidName = errors.New("options: name must match [A-Za-z0-9_-]+")

	// ErrUnknownLanguage indicates a language outside the catalog.
	ErrUnknownLanguage = errors.New("options: unknown language")

	// ErrFrameworkMismatch indicates a framework not declared for the language.
	ErrFrameworkMismatch = errors.New("options: framework not available for language")

	// ErrPackageManagerMismatch indicates a package manager not usable with the language.
	ErrPackageManagerMismatch = errors.New("options: package manager not available for language")

	// ErrUnknownLicense indicates a license id outside the catalog.
	ErrUnknownLicense = errors.New("options: unknown license")

	// ErrUnknownReadmeStyle indicates a README style outside standard, minimal, expanded.
	ErrUnknownReadmeStyle = errors.New("options: unknown readme style")

	// ErrLinterUnsupported indicates a linter that is not available for the language.
	ErrLinterUnsupported = errors.New("options: linter not available for language")

	// ErrRemoteRequiresVCS indicates createRemoteRepo without initVcs.
	ErrRemoteRequiresVCS = errors.New("options: remote repository requires version control")
)

// ValidationError represents a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Wrapped error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("field %q: %s (got: %v)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// ValidationErrors collects every invalid field found by Validate.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation: no errors"
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid options: %s", strings.Join(msgs, "; "))
}

// Is reports whether target is ErrInvalidOptions or wrapped by any contained error.
func (e *ValidationErrors) Is(target error) bool {
	if target == ErrInvalidOptions {
		return true
	}
	for _, ve := range e.Errors {
		if ve.Wrapped != nil && errors.Is(ve.Wrapped, target) {
			return true
		}
	}
	return false
}

func (e *ValidationErrors) add(field, msg string, value any, wrapped error) {
	e.Errors = append(e.Errors, ValidationError{Field: field, Message: msg, Value: value, Wrapped: wrapped})
}

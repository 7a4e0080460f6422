// Package errors provides sentinel and structured errors for the CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrTemplateNotFound indicates a static template file is missing or unreadable.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidPreset indicates a preset answers file failed validation.
	ErrInvalidPreset = errors.New("invalid preset")

	// ErrInvalidOptions indicates the collected options are incomplete or out of range.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrInputClosed indicates the prompt input ended before a valid answer was read.
	ErrInputClosed = errors.New("input closed")
)

// DetailError carries structured context for a fatal error.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the relative file path involved (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	if e.Location != "" {
		b.WriteString(" (")
		b.WriteString(e.Location)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewTemplateError reports a template that could not be read at relPath.
func NewTemplateError(relPath string, cause error) error {
	return &DetailError{
		Type:     "template not found",
		Message:  cause.Error(),
		Location: relPath,
		Hint:     "check --templates-dir or the templates_dir setting",
		Cause:    errors.Join(ErrTemplateNotFound, cause),
	}
}

// NewPresetError reports a preset file that failed validation with issues.
func NewPresetError(path string, issues []string) error {
	return &DetailError{
		Type:     "invalid preset",
		Message:  strings.Join(issues, "; "),
		Location: path,
		Cause:    ErrInvalidPreset,
	}
}

// ExitError carries a process exit code up to main.
type ExitError struct {
	Code int
	Err  error
	// Printed is true when the command layer already reported the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// Exit codes returned by the CLI.
const (
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates options or a preset failed validation.
	ExitValidationError = 2

	// ExitNotFound indicates a template or preset file was not found.
	ExitNotFound = 5

	// ExitInputClosed indicates input ended before every question was answered.
	ExitInputClosed = 6
)

// ExitCodeFor maps an error to the exit code the CLI should return.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrTemplateNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, ErrInvalidPreset), errors.Is(err, ErrInvalidOptions):
		return ExitValidationError
	case errors.Is(err, ErrInputClosed):
		return ExitInputClosed
	default:
		return ExitGeneralError
	}
}

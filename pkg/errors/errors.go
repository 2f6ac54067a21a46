// Package errors provides custom error types for the persondir system.
// These errors enable programmatic error checking across the merge engine,
// the lookup layer, and the directory sources.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the persondir system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrIncorrectResultSize indicates that a lookup returned a different
	// number of records than the caller required
	ErrIncorrectResultSize = errors.New("incorrect result size")

	// ErrSourceUnavailable indicates that a backing source failed to answer
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrReadOnly indicates an attempt to modify a read-only source
	ErrReadOnly = errors.New("read only")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// IncorrectResultSizeError is returned when a backing source yields a
// different number of records than a lookup requires, typically more than
// one match for an identifier that should be unique. It signals an
// inconsistency in the source data, not in the merge engine.
type IncorrectResultSizeError struct {
	Expected int
	Actual   int
}

// Error implements the error interface
func (e *IncorrectResultSizeError) Error() string {
	return fmt.Sprintf("incorrect result size: expected %d, got %d", e.Expected, e.Actual)
}

// Is implements errors.Is support
func (e *IncorrectResultSizeError) Is(target error) bool {
	return target == ErrIncorrectResultSize
}

// NewIncorrectResultSizeError creates a new IncorrectResultSizeError
func NewIncorrectResultSizeError(expected, actual int) *IncorrectResultSizeError {
	return &IncorrectResultSizeError{Expected: expected, Actual: actual}
}

// SourceError represents a failure from a backing directory source
type SourceError struct {
	Source string
	Op     string
	Err    error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("source %s: %s: %v", e.Source, e.Op, e.Err)
	}
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewSourceError creates a new SourceError
func NewSourceError(source, op string, err error) *SourceError {
	return &SourceError{Source: source, Op: op, Err: err}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError represents a data parsing error from a file-backed source
type ParseError struct {
	Format string
	File   string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parsing %s file %s: %v", e.Format, e.File, e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Format, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error indicates a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsIncorrectResultSize checks if an error is a result-size violation
func IsIncorrectResultSize(err error) bool {
	return errors.Is(err, ErrIncorrectResultSize)
}

// IsSourceUnavailable checks if an error came from a failing backing source
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

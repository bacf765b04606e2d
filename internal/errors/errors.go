// Package errors provides a structured error type hierarchy for the vity CLI.
//
// This package defines base error types for common error conditions, wrapped
// error types that add contextual information, and helper functions for error
// wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - resource not found
//   - ErrInvalid - validation failed
//   - ErrCanceled - user canceled operation
//   - ErrIO - file I/O error
//   - ErrProvider - AI provider request failed
//   - ErrUnsupportedDialect - active shell has no history capability
//   - ErrHistoryDisabled - shell history is configured off
//
// Wrapped error types (add context):
//   - InjectError{Dialect, Err} - history injection errors
//   - ProviderError{Provider, Op, Err} - AI provider errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use sentinel errors directly
//	return errors.ErrHistoryDisabled
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "loadTranscript")
//
//	// Check error types
//	if errors.IsHistoryDisabled(err) {
//	    // degrade silently
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = baseError("not found")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrCanceled indicates the user canceled an operation.
	ErrCanceled = baseError("canceled")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrProvider indicates an AI provider request failed.
	ErrProvider = baseError("provider request failed")

	// ErrUnsupportedDialect indicates the active shell exposes no usable
	// history facility.
	ErrUnsupportedDialect = baseError("unsupported shell dialect")

	// ErrHistoryDisabled indicates shell history is configured off
	// (history size of zero or no resolvable history file).
	ErrHistoryDisabled = baseError("shell history disabled")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// InjectError represents an error that occurred during history injection.
type InjectError struct {
	// Dialect is the shell dialect being targeted (e.g., "bash", "zsh").
	Dialect string
	// Err is the underlying error.
	Err error
}

func (e *InjectError) Error() string {
	if e.Dialect != "" {
		return fmt.Sprintf("inject (%s): %s", e.Dialect, e.Err)
	}
	return fmt.Sprintf("inject: %s", e.Err)
}

func (e *InjectError) Unwrap() error { return e.Err }

// ProviderError represents an error from an AI provider operation.
type ProviderError struct {
	// Provider is the provider name (e.g., "openai").
	Provider string
	// Op is the operation being performed (e.g., "generate", "chat").
	Op string
	// Err is the underlying error.
	Err error
}

func (e *ProviderError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s %s: %s", e.Provider, e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsProvider reports whether err is or wraps ErrProvider.
func IsProvider(err error) bool {
	return errors.Is(err, ErrProvider)
}

// IsUnsupportedDialect reports whether err is or wraps ErrUnsupportedDialect.
func IsUnsupportedDialect(err error) bool {
	return errors.Is(err, ErrUnsupportedDialect)
}

// IsHistoryDisabled reports whether err is or wraps ErrHistoryDisabled.
func IsHistoryDisabled(err error) bool {
	return errors.Is(err, ErrHistoryDisabled)
}

// AsInjectError reports whether err can be typed as a *InjectError.
func AsInjectError(err error) (*InjectError, bool) {
	var ie *InjectError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// AsProviderError reports whether err can be typed as a *ProviderError.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

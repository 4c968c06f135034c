// Package errors provides standardized error types for the charconv codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion failure classes
var (
	// ErrMalformedEncoding indicates invalid lead or continuation bytes,
	// truncated sequences, out-of-range code points, or lone/mismatched
	// surrogate code units
	ErrMalformedEncoding = errors.New("malformed encoding")
	// ErrBufferTooSmall indicates output capacity below the worst-case
	// expansion for the conversion
	ErrBufferTooSmall = errors.New("output buffer too small")
	// ErrOddLength indicates a UTF-16 input whose byte length is not a
	// multiple of two
	ErrOddLength = errors.New("utf-16 input has odd length")
	// ErrInputTooLarge indicates a UTF-16 input beyond the length ceiling
	// that keeps the 1.5x capacity computation from overflowing
	ErrInputTooLarge = errors.New("utf-16 input too large")
)

// MalformedError represents a malformed input with context
type MalformedError struct {
	Encoding string // Encoding being decoded (e.g., "UTF-8", "UTF-16LE")
	Detail   string // Human-readable description of the malformation
	Err      error  // Underlying error, if any
}

func (e *MalformedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("malformed %s: %s", e.Encoding, e.Detail)
	}
	return fmt.Sprintf("malformed %s", e.Encoding)
}

func (e *MalformedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformedEncoding
}

// BufferSizeError represents an undersized output buffer with context
type BufferSizeError struct {
	Required int   // Minimum capacity the conversion needs
	Given    int   // Capacity the caller supplied
	Err      error // Underlying error, if any
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("output buffer too small: need %d bytes, have %d", e.Required, e.Given)
}

func (e *BufferSizeError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrBufferTooSmall
}

// Helper functions for creating common errors

// NewMalformed creates a MalformedError
func NewMalformed(encoding, detail string) *MalformedError {
	return &MalformedError{
		Encoding: encoding,
		Detail:   detail,
	}
}

// NewBufferSize creates a BufferSizeError
func NewBufferSize(required, given int) *BufferSizeError {
	return &BufferSizeError{
		Required: required,
		Given:    given,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

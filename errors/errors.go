package errors

import (
	"errors"
	"fmt"
)

// Common error types for categorization and handling

var (
	// ErrNotFound indicates a requested node or model was not found
	ErrNotFound = errors.New("resource not found")

	// ErrMalformedConnector indicates a connector ID that cannot be decoded
	ErrMalformedConnector = errors.New("malformed connector id")

	// ErrUnknownSide indicates a connector side other than left or right
	ErrUnknownSide = errors.New("unknown connector side")

	// ErrInvalidInput indicates invalid caller input
	ErrInvalidInput = errors.New("invalid input")
)

// WrapError wraps an error with context message and stack
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMalformedConnector checks if error is a malformed connector error
func IsMalformedConnector(err error) bool {
	return errors.Is(err, ErrMalformedConnector)
}

// IsInvalidInput checks if error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

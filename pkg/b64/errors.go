package b64

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrTypeMismatch indicates a non-string value was passed where a string is required.
	ErrTypeMismatch = errors.New("b64: input must be a string")

	// ErrSizeLimitExceeded indicates input longer than the configured maximum.
	ErrSizeLimitExceeded = errors.New("b64: input exceeds maximum size")

	// ErrInvalidFormat indicates input that is not valid base64.
	// Its message is deliberately generic and is the only text a decode failure carries.
	ErrInvalidFormat = errors.New("invalid base64 input")

	// ErrInvalidConfiguration indicates an out-of-range security setting.
	ErrInvalidConfiguration = errors.New("b64: invalid configuration")
)

// SizeError reports an input that exceeded the size limit.
type SizeError struct {
	Size int // Length of the rejected input in bytes
	Max  int // Limit in force when the input was checked
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("b64: input size %d exceeds maximum of %d bytes", e.Size, e.Max)
}

func (e *SizeError) Unwrap() error {
	return ErrSizeLimitExceeded
}

// ConfigError reports a rejected security setting.
type ConfigError struct {
	Field string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("b64: invalid configuration: %s must be non-negative, got %d", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

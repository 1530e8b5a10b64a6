package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Template discovery errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrAssetsMissing    ErrorCode = "ASSETS_MISSING"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Expansion errors
	ErrFileRead        ErrorCode = "FILE_READ"
	ErrTemplateCompile ErrorCode = "TEMPLATE_COMPILE"

	// Export errors
	ErrOutputExists ErrorCode = "OUTPUT_EXISTS"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// InflateError represents a structured error with code and details
type InflateError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *InflateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *InflateError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *InflateError) Is(target error) bool {
	var targetErr *InflateError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new InflateError with the given code and message
func New(code ErrorCode, message string) *InflateError {
	return &InflateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new InflateError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *InflateError {
	return &InflateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an InflateError
func Wrap(err error, code ErrorCode, message string) *InflateError {
	if err == nil {
		return nil
	}
	return &InflateError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *InflateError {
	if err == nil {
		return nil
	}
	return &InflateError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *InflateError) WithDetail(key string, value interface{}) *InflateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *InflateError) WithDetails(details map[string]interface{}) *InflateError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var inflateErr *InflateError
	if errors.As(err, &inflateErr) {
		return inflateErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an InflateError
func GetErrorCode(err error) ErrorCode {
	var inflateErr *InflateError
	if errors.As(err, &inflateErr) {
		return inflateErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an InflateError
func GetErrorDetails(err error) map[string]interface{} {
	var inflateErr *InflateError
	if errors.As(err, &inflateErr) {
		return inflateErr.Details
	}
	return nil
}

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

	// Markup errors
	ErrParse             ErrorCode = "PARSE"
	ErrUnknownDirective  ErrorCode = "UNKNOWN_DIRECTIVE"
	ErrBackendInvocation ErrorCode = "BACKEND_INVOCATION"
	ErrNesting           ErrorCode = "NESTING"
	ErrInvalidStyle      ErrorCode = "INVALID_STYLE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// Markup reports whether the code is raised by the markup engine, as
// opposed to configuration or input handling.
func (c ErrorCode) Markup() bool {
	switch c {
	case ErrParse, ErrUnknownDirective, ErrBackendInvocation, ErrNesting, ErrInvalidStyle:
		return true
	}
	return false
}

// MarkupError represents a structured error with code and details
type MarkupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MarkupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MarkupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MarkupError) Is(target error) bool {
	var targetErr *MarkupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MarkupError with the given code and message
func New(code ErrorCode, message string) *MarkupError {
	return &MarkupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MarkupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MarkupError {
	return &MarkupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a MarkupError
func Wrap(err error, code ErrorCode, message string) *MarkupError {
	if err == nil {
		return nil
	}
	return &MarkupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MarkupError {
	if err == nil {
		return nil
	}
	return &MarkupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MarkupError) WithDetail(key string, value interface{}) *MarkupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Marker returns the offending tag or directive recorded in the details.
// Unbalanced close errors record several; the first one is returned.
func (e *MarkupError) Marker() string {
	if m, ok := e.Details["marker"].(string); ok {
		return m
	}
	if ms, ok := e.Details["markers"].([]string); ok && len(ms) > 0 {
		return ms[0]
	}
	return ""
}

// MarkerOf returns the marker of the first MarkupError in err's chain.
func MarkerOf(err error) (string, bool) {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		if m := markupErr.Marker(); m != "" {
			return m, true
		}
	}
	return "", false
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MarkupError
func GetErrorCode(err error) ErrorCode {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MarkupError
func GetErrorDetails(err error) map[string]interface{} {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Details
	}
	return nil
}

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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Pack errors
	ErrPackNotFound     ErrorCode = "PACK_NOT_FOUND"
	ErrPackInvalid      ErrorCode = "PACK_INVALID"
	ErrPackIncompatible ErrorCode = "PACK_INCOMPATIBLE"

	// Raw merging errors
	ErrMissingBaseline       ErrorCode = "MISSING_BASELINE"
	ErrProvenanceUnavailable ErrorCode = "PROVENANCE_UNAVAILABLE"
	ErrMergeEngine           ErrorCode = "MERGE_ENGINE"

	// Init file errors
	ErrInitParse       ErrorCode = "INIT_PARSE"
	ErrFieldRestricted ErrorCode = "FIELD_RESTRICTED"
	ErrFieldUnknown    ErrorCode = "FIELD_UNKNOWN"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// GfxpackError represents a structured error with code and details
type GfxpackError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GfxpackError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GfxpackError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GfxpackError) Is(target error) bool {
	var targetErr *GfxpackError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GfxpackError with the given code and message
func New(code ErrorCode, message string) *GfxpackError {
	return &GfxpackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GfxpackError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GfxpackError {
	return &GfxpackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GfxpackError
func Wrap(err error, code ErrorCode, message string) *GfxpackError {
	if err == nil {
		return nil
	}
	return &GfxpackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GfxpackError {
	if err == nil {
		return nil
	}
	return &GfxpackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GfxpackError) WithDetail(key string, value interface{}) *GfxpackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GfxpackError) WithDetails(details map[string]interface{}) *GfxpackError {
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
	var gfxErr *GfxpackError
	if errors.As(err, &gfxErr) {
		return gfxErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GfxpackError
func GetErrorCode(err error) ErrorCode {
	var gfxErr *GfxpackError
	if errors.As(err, &gfxErr) {
		return gfxErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GfxpackError
func GetErrorDetails(err error) map[string]interface{} {
	var gfxErr *GfxpackError
	if errors.As(err, &gfxErr) {
		return gfxErr.Details
	}
	return nil
}

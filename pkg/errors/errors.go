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

	// Package errors
	ErrPackageNotFound ErrorCode = "PACKAGE_NOT_FOUND"
	ErrPackageInvalid  ErrorCode = "PACKAGE_INVALID"

	// Planning and execution errors
	ErrConflict           ErrorCode = "CONFLICT"
	ErrTargetUnwritable   ErrorCode = "TARGET_UNWRITABLE"
	ErrIO                 ErrorCode = "IO"
	ErrAdoptSourceMissing ErrorCode = "ADOPT_SOURCE_MISSING"
	ErrInvalidFlags       ErrorCode = "INVALID_FLAG_COMBINATION"

	// Environment errors
	ErrDotfilesDirNotFound ErrorCode = "DOTFILES_DIR_NOT_FOUND"
	ErrInvalidPath         ErrorCode = "INVALID_PATH"
	ErrScriptFailed        ErrorCode = "SCRIPT_FAILED"
	ErrConfigLoad          ErrorCode = "CONFIG_LOAD"
)

// StauError represents a structured error with code and details
type StauError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StauError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StauError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StauError) Is(target error) bool {
	var targetErr *StauError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// Hint returns a short remediation for the error's code, or "" when none applies.
func (e *StauError) Hint() string {
	return hints[e.Code]
}

var hints = map[ErrorCode]string{
	ErrPackageNotFound:     "Check that the package exists in your dotfiles directory. Use 'stau list' to see available packages.",
	ErrConflict:            "Remove the existing file, re-run with --force to overwrite it, or adopt it with 'stau adopt <package> <path>'.",
	ErrTargetUnwritable:    "You may need elevated privileges, or check the permissions of the target directory.",
	ErrAdoptSourceMissing:  "Only existing files under the target directory can be adopted.",
	ErrInvalidFlags:        "See 'stau <command> --help' for the flags each command accepts.",
	ErrDotfilesDirNotFound: "Create your dotfiles directory or set STAU_DIR to point to it.",
	ErrScriptFailed:        "Check the package script for errors. Use --no-setup or --no-teardown to skip it.",
	ErrConfigLoad:          "Check the syntax of your stau config file.",
}

// New creates a new StauError with the given code and message
func New(code ErrorCode, message string) *StauError {
	return &StauError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StauError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StauError {
	return &StauError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StauError
func Wrap(err error, code ErrorCode, message string) *StauError {
	if err == nil {
		return nil
	}
	return &StauError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StauError {
	if err == nil {
		return nil
	}
	return &StauError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StauError) WithDetail(key string, value interface{}) *StauError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stauErr *StauError
	if errors.As(err, &stauErr) {
		return stauErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StauError
func GetErrorCode(err error) ErrorCode {
	var stauErr *StauError
	if errors.As(err, &stauErr) {
		return stauErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StauError
func GetErrorDetails(err error) map[string]interface{} {
	var stauErr *StauError
	if errors.As(err, &stauErr) {
		return stauErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit status used by the CLI.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetErrorCode(err) {
	case ErrConflict:
		return 2
	case ErrTargetUnwritable, ErrIO:
		return 3
	case ErrScriptFailed:
		return 4
	default:
		return 1
	}
}

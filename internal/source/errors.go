package source

import (
	"errors"
	"fmt"
)

// Error represents a failure to open a source.
//
// Source errors are raised before any check query runs:
//   - Not found: a file path does not exist
//   - Unreadable: the path exists but the engine cannot open or parse it
//   - Invalid table: an in-memory table definition violates its contract
//
// None of these produce a log record; only completed checks are logged.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Source identifies the affected source (file path or table name).
	Source string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes source errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates the source path does not exist.
	ErrCodeNotFound ErrorCode = "SOURCE_NOT_FOUND"

	// ErrCodeUnreadable indicates the engine cannot open or parse the source.
	ErrCodeUnreadable ErrorCode = "SOURCE_UNREADABLE"

	// ErrCodeInvalidTable indicates a malformed in-memory table definition.
	ErrCodeInvalidTable ErrorCode = "INVALID_TABLE"
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (source=%s): %v", e.Code, e.Message, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %s (source=%s)", e.Code, e.Message, e.Source)
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound returns true if the error is a missing-source error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeNotFound
	}
	return false
}

// IsUnreadable returns true if the error is an unreadable-source error.
// Uses errors.As to handle wrapped errors.
func IsUnreadable(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeUnreadable
	}
	return false
}

// IsInvalidTable returns true if the error is a table-definition error.
// Uses errors.As to handle wrapped errors.
func IsInvalidTable(err error) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == ErrCodeInvalidTable
	}
	return false
}

// NewNotFoundError creates an Error for a missing source path.
func NewNotFoundError(path string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: "source path does not exist",
		Source:  path,
	}
}

// NewUnreadableError creates an Error for a source the engine cannot read.
func NewUnreadableError(path string, cause error) *Error {
	return &Error{
		Code:    ErrCodeUnreadable,
		Message: "engine cannot read source",
		Source:  path,
		Err:     cause,
	}
}

// NewInvalidTableError creates an Error for a malformed table definition.
func NewInvalidTableError(name, message string, cause error) *Error {
	return &Error{
		Code:    ErrCodeInvalidTable,
		Message: message,
		Source:  name,
		Err:     cause,
	}
}

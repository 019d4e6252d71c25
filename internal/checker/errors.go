package checker

import (
	"errors"
	"fmt"
)

// Error represents a check request that violates its contract.
//
// Argument errors are raised before any query runs and never produce a
// log record: empty or malformed identifiers, empty value or join-key
// lists, inverted ranges, unknown type names, invalid patterns.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Check is the kind label of the offending check.
	Check string

	// Field names the offending parameter, if one can be singled out.
	Field string

	// Err is the underlying cause, if any.
	Err error
}

// ErrorCode categorizes checker errors.
type ErrorCode string

// ErrCodeInvalidArgument indicates a check parameter violates its
// contract.
const ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Check != "" && e.Field != "" {
		msg = fmt.Sprintf("%s (check=%s, field=%s)", msg, e.Check, e.Field)
	} else if e.Check != "" {
		msg = fmt.Sprintf("%s (check=%s)", msg, e.Check)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsInvalidArgument returns true if the error is an invalid-argument
// error. Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == ErrCodeInvalidArgument
	}
	return false
}

// newArgError creates an invalid-argument Error for one check field.
func newArgError(check, field, message string, cause error) *Error {
	return &Error{
		Code:    ErrCodeInvalidArgument,
		Message: message,
		Check:   check,
		Field:   field,
		Err:     cause,
	}
}

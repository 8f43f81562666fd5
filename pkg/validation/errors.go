package validation

import (
	"errors"
	"fmt"
)

// Error is a caller-facing validation failure. Its message is safe to show
// to the user verbatim.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a validation error for field.
func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// Newf returns a validation error for field with a formatted message.
func Newf(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Prefix qualifies a validation error with the component it came from.
// Non-validation errors are returned unchanged.
func Prefix(scope string, err error) error {
	var vErr *Error
	if !errors.As(err, &vErr) {
		return err
	}
	field := scope
	if vErr.Field != "" {
		field = scope + "." + vErr.Field
	}
	return &Error{Field: field, Message: scope + ": " + vErr.Message}
}

// IsValidation reports whether err is, or wraps, a validation error.
func IsValidation(err error) bool {
	var vErr *Error
	return errors.As(err, &vErr)
}

// Package errox defines the error kinds returned across package boundaries.
// Callers check the kind with errors.Is and attach detail with Newf or CausedBy.
package errox

import (
	"fmt"
)

// RoxError is an error kind. Errors derived from it match it under errors.Is.
type RoxError struct {
	message string
	base    *RoxError
}

var (
	// InvalidArgs is returned when a caller supplied unusable input.
	InvalidArgs = makeSentinel("invalid arguments")
	// NotFound is returned when a requested object does not exist.
	NotFound = makeSentinel("not found")
	// ServerError is returned when the backing store fails.
	ServerError = makeSentinel("server error")
)

func makeSentinel(message string) *RoxError {
	return &RoxError{message: message}
}

func (e *RoxError) Error() string {
	return e.message
}

// Is reports whether target is this error or the kind it was derived from.
func (e *RoxError) Is(target error) bool {
	t, ok := target.(*RoxError)
	if !ok {
		return false
	}
	return e == t || (e.base != nil && e.base == t)
}

// New returns an error of this kind with a custom message.
func (e *RoxError) New(message string) *RoxError {
	base := e
	if e.base != nil {
		base = e.base
	}
	return &RoxError{message: message, base: base}
}

// Newf is New with formatting.
func (e *RoxError) Newf(format string, args ...any) *RoxError {
	return e.New(fmt.Sprintf(format, args...))
}

// CausedBy returns an error of this kind whose message is extended with the cause.
func (e *RoxError) CausedBy(cause any) error {
	return &causedBy{kind: e, cause: cause}
}

type causedBy struct {
	kind  *RoxError
	cause any
}

func (c *causedBy) Error() string {
	return fmt.Sprintf("%s: %v", c.kind.Error(), c.cause)
}

func (c *causedBy) Unwrap() []error {
	if err, ok := c.cause.(error); ok {
		return []error{c.kind, err}
	}
	return []error{c.kind}
}

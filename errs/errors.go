// Package errs defines the failures reported by cmdtree. Every failure kind is a
// package-level sentinel; concrete failures are derived from it with WithArgs and
// Wrap and still match the sentinel with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

// Error is a keyed error with optional format arguments and an optional cause.
//
// Example usage:
//
//	err := errs.ErrUnknownOption.WithArgs("-x")
//	if errors.Is(err, errs.ErrUnknownOption) {
//	    // ...
//	}
type Error struct {
	// sentinel is shared by every error derived from the same New call
	sentinel *Error
	key      string
	args     []interface{}
	wrapped  error
}

// New creates a sentinel error for key
func New(key string) *Error {
	e := &Error{key: key}
	e.sentinel = e

	return e
}

// Error formats the message registered for the key with the error's args
func (e *Error) Error() string {
	msg := currentProvider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) *Error {
	return &Error{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *Error) Wrap(err error) *Error {
	return &Error{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is reports whether target is the sentinel this error was derived from
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t == e.sentinel
}

// Key returns the message key
func (e *Error) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *Error) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Construction-time errors
var (
	ErrInvalidFlagSpec   = New(ErrInvalidFlagSpecKey)
	ErrInvalidArityValue = New(ErrInvalidArityValueKey)
	ErrDuplicateCommand  = New(ErrDuplicateCommandKey)
	ErrDuplicateFlag     = New(ErrDuplicateFlagKey)
	ErrEmptyName         = New(ErrEmptyNameKey)
)

// Parse-time errors
var (
	ErrUnknownOption           = New(ErrUnknownOptionKey)
	ErrMissingOptionValue      = New(ErrMissingOptionValueKey)
	ErrInvalidOptionValue      = New(ErrInvalidOptionValueKey)
	ErrInvalidOperandValue     = New(ErrInvalidOperandValueKey)
	ErrMissingRequiredOption   = New(ErrMissingRequiredOptionKey)
	ErrTooFewOperands          = New(ErrTooFewOperandsKey)
	ErrTooManyOperands         = New(ErrTooManyOperandsKey)
	ErrUnexpectedExtraArgument = New(ErrUnexpectedExtraArgumentKey)
	ErrUnknownCommand          = New(ErrUnknownCommandKey)
	ErrActionFailed            = New(ErrActionFailedKey)
	ErrSplitFailed             = New(ErrSplitFailedKey)
)

// IsUsageError reports whether err was caused by the user's input rather than by
// an action callback or a malformed schema
func IsUsageError(err error) bool {
	for _, s := range []*Error{
		ErrUnknownOption, ErrMissingOptionValue, ErrInvalidOptionValue, ErrInvalidOperandValue,
		ErrMissingRequiredOption, ErrTooFewOperands, ErrTooManyOperands,
		ErrUnexpectedExtraArgument, ErrUnknownCommand, ErrSplitFailed,
	} {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}

// Package errs defines the error kinds shared by the wwutils codecs.
//
// Callers match kinds with errors.Is:
//
//	if _, err := xid.ID(s); errors.Is(err, errs.ErrInvalidFormat) {
//	    ...
//	}
package errs

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	// ErrInvalidFormat is returned when a required delimiter is missing,
	// e.g. an XId without "@".
	ErrInvalidFormat = errors.New("invalid format")

	// ErrEmptyInput is returned when an empty value is given where one is required.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidArgument is returned for arguments of the wrong type or shape.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDecode is returned for malformed percent-escapes and for decoded
	// bytes that are not valid UTF-8.
	ErrDecode = errors.New("decode error")
)

// Error carries an error kind together with the operation and input that
// produced it.
type Error struct {
	Kind  error
	Op    string
	Input string
	Cause error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.Input != "" {
		msg += fmt.Sprintf(" (input %q)", e.Input)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// New returns an *Error of the given kind.
func New(kind error, op, input string) error {
	return &Error{Kind: kind, Op: op, Input: input}
}

// Wrap returns an *Error of the given kind wrapping cause.
func Wrap(kind error, op, input string, cause error) error {
	return &Error{Kind: kind, Op: op, Input: input, Cause: cause}
}

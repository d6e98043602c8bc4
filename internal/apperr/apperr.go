// Package apperr defines the error kinds returned by the record core.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is a machine-readable error code.
type Kind string

const (
	KindUnknown Kind = "UNKNOWN"

	// Store errors
	KindDuplicateKey Kind = "DUPLICATE_KEY"
	KindNotFound     Kind = "NOT_FOUND"
	KindEmptyStore   Kind = "EMPTY_STORE"

	// Validation errors
	KindOutOfRange    Kind = "OUT_OF_RANGE"
	KindInvalidFormat Kind = "INVALID_FORMAT"
	KindNoSubjects    Kind = "NO_SUBJECTS"

	// Persistence errors
	KindCorruptLine Kind = "CORRUPT_LINE"
)

// Sentinels for errors.Is matching. Any *Error with the same Kind matches.
var (
	ErrDuplicateKey  = &Error{Kind: KindDuplicateKey}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrEmptyStore    = &Error{Kind: KindEmptyStore}
	ErrOutOfRange    = &Error{Kind: KindOutOfRange}
	ErrInvalidFormat = &Error{Kind: KindInvalidFormat}
	ErrNoSubjects    = &Error{Kind: KindNoSubjects}
	ErrCorruptLine   = &Error{Kind: KindCorruptLine}
)

// Error is a typed outcome carrying a Kind and a human message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports kind equality so callers can match against the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New creates an error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

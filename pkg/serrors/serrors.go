// Package serrors provides semantic error kinds for the scoring pipeline.
// A Kind names a category of failure (an unrecognized grade, an empty
// denominator, ...); an Error pairs a Kind with a message and an optional
// cause so callers can branch on the category with errors.Is.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel).
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrUnrecognizedGrade indicates a TLS grade outside F,T,C,B,A-,A,A+.
	// It usually means the upstream scan schema changed and is always fatal.
	ErrUnrecognizedGrade = NewKind("UNRECOGNIZED_GRADE")
	// ErrIncompleteRecord indicates a domain lacks the inspect record every
	// scored row is anchored on.
	ErrIncompleteRecord = NewKind("INCOMPLETE_RECORD")
	// ErrEmptyDenominator indicates a percentage was requested over an empty set.
	ErrEmptyDenominator = NewKind("EMPTY_DENOMINATOR")
	// ErrMalformedInput indicates an input file could not be parsed.
	ErrMalformedInput = NewKind("MALFORMED_INPUT")
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal indicates a broken invariant.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a kind, an optional wrapped cause and an optional message.
//
// errors.Is and errors.As match either the kind or anything in the cause
// chain. Error() renders "<msg>: <cause>", falling back to whichever part is
// set and finally to the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs an error of the given kind with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs an error of the given kind around cause err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches against the kind or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

// As extracts either the kind or something from the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind of this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// KindOf returns the first Kind found in err's chain, or nil.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

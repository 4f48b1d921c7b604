// Package errors provides structured error types for navigator.
// Every failure carries the operation that produced it and a Kind the
// caller can branch on without string matching.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op describes an operation, usually as "package.Function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindIO
	KindConfig
	// KindNotConfigured means no usable AI credential exists.
	KindNotConfigured
	// KindRequestFailed is a transport or service-level failure.
	KindRequestFailed
	// KindMalformedResponse means no structured payload could be extracted.
	KindMalformedResponse
	// KindValidationFailed means a structured payload is missing required fields.
	KindValidationFailed
	KindPersistenceRead
	KindPersistenceWrite
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindNotConfigured:
		return "not configured"
	case KindRequestFailed:
		return "request failed"
	case KindMalformedResponse:
		return "malformed response"
	case KindValidationFailed:
		return "validation failed"
	case KindPersistenceRead:
		return "persistence read failure"
	case KindPersistenceWrite:
		return "persistence write failure"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for navigator.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be an Op, a Kind, a string
// (context message) or an error (the underlying cause), in any order.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether any error in err's chain is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	switch x := err.(type) {
	case nil:
		return false
	case *Error:
		return x.Kind == kind || Is(x.Err, kind)
	case interface{ Unwrap() []error }:
		for _, inner := range x.Unwrap() {
			if Is(inner, kind) {
				return true
			}
		}
		return false
	default:
		return Is(errors.Unwrap(err), kind)
	}
}

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// NotConfigured reports that no credential could be resolved for op.
func NotConfigured(op Op) error {
	return E(op, KindNotConfigured, "no API key configured")
}

// RequestFailed wraps a transport or service error.
func RequestFailed(op Op, err error) error {
	return E(op, KindRequestFailed, err)
}

// MalformedResponse reports that raw held no extractable payload.
func MalformedResponse(op Op, raw string) error {
	const max = 120
	if len(raw) > max {
		raw = raw[:max] + "..."
	}
	return E(op, KindMalformedResponse, fmt.Sprintf("no JSON object in response %q", raw))
}

// ValidationFailed reports the required fields that were missing.
func ValidationFailed(op Op, missing []string) error {
	return E(op, KindValidationFailed, "missing required fields: "+strings.Join(missing, ", "))
}

// PersistenceRead wraps a failure to decode the stored entry for key.
func PersistenceRead(key string, err error) error {
	return E(Op("store.Load"), KindPersistenceRead, fmt.Sprintf("entry %q", key), err)
}

// PersistenceWrite wraps a failure to write the stored entry for key.
func PersistenceWrite(key string, err error) error {
	return E(Op("store.Save"), KindPersistenceWrite, fmt.Sprintf("entry %q", key), err)
}

// As is errors.As, re-exported so callers need only one errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New is errors.New.
func New(text string) error {
	return errors.New(text)
}

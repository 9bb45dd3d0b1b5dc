package goofx

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Parse matches exactly one of these with errors.Is.
var (
	// ErrHeader reports a malformed or unsupported legacy header.
	ErrHeader = errors.New("header error")
	// ErrNormalize reports tag soup that can not be reduced to a single tree.
	ErrNormalize = errors.New("normalization error")
	// ErrStructure reports a required element that is missing.
	ErrStructure = errors.New("structural error")
	// ErrValue reports a scalar that can not be coerced to its target type.
	ErrValue = errors.New("value error")
	// ErrUnsupported reports a recognized feature that is not implemented.
	ErrUnsupported = errors.New("unsupported")
)

// ParseError describes the first failure encountered while parsing a document.
type ParseError struct {
	Kind  error  // One of the Err* kinds above.
	Field string // Field name or path the failure relates to, may be empty.
	Msg   string
	Err   error // Underlying cause, may be nil.
}

func (e *ParseError) Error() string {
	msg := "goofx: " + e.Kind.Error()
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is matches the error kind.
func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newError(kind error, field, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: kind, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func wrapError(kind error, field string, err error) *ParseError {
	return &ParseError{Kind: kind, Field: field, Err: err}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

/*
Kind classifies a failure so callers can decide how to surface it without
inspecting upstream status codes.
*/
type Kind string

const (
	KindConfiguration Kind = "configuration"
	KindNotFound      Kind = "not_found"
	KindTransport     Kind = "transport"
	KindInvalidInput  Kind = "invalid_input"
)

/*
Error collects the underlying errors and any context messages for a single
failure of a given Kind.
*/
type Error struct {
	Kind Kind
	Errs []error
	Msgs []any
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrTransport     = &Error{Kind: KindTransport}
	ErrInvalidInput  = &Error{Kind: KindInvalidInput}
)

/*
NewError builds an Error of the given kind. Each part is either an error, which
is kept for unwrapping, or a message.
*/
func NewError(kind Kind, parts ...any) error {
	err := &Error{Kind: kind}

	for _, part := range parts {
		switch v := part.(type) {
		case nil:
		case error:
			err.Errs = append(err.Errs, v)
		default:
			err.Msgs = append(err.Msgs, v)
		}
	}

	return err
}

func Configuration(parts ...any) error { return NewError(KindConfiguration, parts...) }
func NotFound(parts ...any) error      { return NewError(KindNotFound, parts...) }
func Transport(parts ...any) error     { return NewError(KindTransport, parts...) }
func InvalidInput(parts ...any) error  { return NewError(KindInvalidInput, parts...) }

func (err *Error) Error() string {
	builder := &strings.Builder{}
	builder.WriteString(string(err.Kind))

	for _, msg := range err.Msgs {
		builder.WriteString(": ")
		builder.WriteString(fmt.Sprintf("%v", msg))
	}

	for _, e := range err.Errs {
		builder.WriteString(": ")
		builder.WriteString(e.Error())
	}

	return builder.String()
}

/*
Unwrap exposes the collected errors so errors.Is and errors.As reach the
original upstream failure.
*/
func (err *Error) Unwrap() []error {
	return err.Errs
}

/*
Is matches any *Error of the same Kind.
*/
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == err.Kind
}

/*
KindOf returns the Kind of the first *Error in the chain, or an empty Kind.
*/
func KindOf(err error) Kind {
	var e *Error

	if stderrors.As(err, &e) {
		return e.Kind
	}

	return ""
}

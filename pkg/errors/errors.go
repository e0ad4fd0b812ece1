// Package errors carries the typed error kinds shared by the turn pipeline
// and their HTTP status mapping.
package errors

import (
	"errors"
	"net/http"
)

// Kind classifies a failure for propagation and presentation.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindTranscription Kind = "transcription"
	KindGeneration    Kind = "generation"
	KindSynthesis     Kind = "synthesis"
	KindUnexpected    Kind = "unexpected"
)

// Error is a failure tagged with a Kind. Msg is safe to show to end users;
// Err keeps the underlying cause for logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Msg + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

func Wrap(kind Kind, msg string, err error) *Error { return &Error{Kind: kind, Msg: msg, Err: err} }

func Validation(msg string) *Error { return New(KindValidation, msg) }

func Transcription(msg string, err error) *Error { return Wrap(KindTranscription, msg, err) }

func Generation(msg string, err error) *Error { return Wrap(KindGeneration, msg, err) }

func Synthesis(msg string, err error) *Error { return Wrap(KindSynthesis, msg, err) }

func Unexpected(err error) *Error { return Wrap(KindUnexpected, DefaultUnexpectedMessage, err) }

// DefaultUnexpectedMessage is what users see for unclassified failures.
const DefaultUnexpectedMessage = "something went wrong, please try again"

// KindOf reports the Kind of err, or KindUnexpected when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// Message returns the user-facing message of err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return DefaultUnexpectedMessage
}

// IsKind reports whether err carries kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps a kind to the response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindTranscription, KindGeneration, KindSynthesis:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

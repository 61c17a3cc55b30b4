package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a pipeline failure so the request boundary can pick a
// status code without inspecting component internals.
type Kind string

const (
	// KindValidation is missing or malformed client input, detected
	// before any file system or network work.
	KindValidation Kind = "validation"

	// KindParsing is an unreadable document or a declared/actual
	// format mismatch.
	KindParsing Kind = "parsing"

	// KindInferenceFormat is model output that is not a well-formed,
	// non-empty JSON string array.
	KindInferenceFormat Kind = "inference_format"

	// KindUpstream is a network failure or non-2xx from the model or
	// the job provider.
	KindUpstream Kind = "upstream"

	// KindTimeout is an external call that exceeded its deadline.
	KindTimeout Kind = "timeout"

	// KindUnexpected is anything uncategorized.
	KindUnexpected Kind = "unexpected"
)

// Error carries a failure kind alongside the message chain.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a kind and message while keeping the chain
// intact for errors.Is / errors.As.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindUnexpected when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// HTTPStatus maps an error to the status the request boundary responds
// with. Validation failures are the client's fault; everything else is a
// pipeline failure surfaced as 500.
func HTTPStatus(err error) int {
	if KindOf(err) == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

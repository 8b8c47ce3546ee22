// Package apperr defines the error taxonomy shared by services and the HTTP layer.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for HTTP status mapping.
type Kind int

const (
	// KindInput indicates a missing or malformed request value.
	KindInput Kind = iota
	// KindAuth indicates a missing or expired session where one is required.
	KindAuth
	// KindConfig indicates a missing provider credential.
	KindConfig
	// KindUpstream indicates a failed or malformed response from an external provider.
	KindUpstream
	// KindNotFound indicates an unknown resource identifier.
	KindNotFound
)

// Error is a classified application error.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap creates a classified error around a cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Input returns a KindInput error.
func Input(msg string) *Error { return New(KindInput, msg) }

// Auth returns a KindAuth error.
func Auth(msg string) *Error { return New(KindAuth, msg) }

// Config returns a KindConfig error.
func Config(msg string) *Error { return New(KindConfig, msg) }

// Upstream returns a KindUpstream error wrapping a cause.
func Upstream(msg string, err error) *Error { return Wrap(KindUpstream, msg, err) }

// NotFound returns a KindNotFound error.
func NotFound(msg string) *Error { return New(KindNotFound, msg) }

// KindOf reports the Kind of err, or KindUpstream when err carries no
// classification. The zero-value convention keeps unclassified upstream
// failures on the 500 path.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUpstream
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// Status maps an error to a conventional HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindInput:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Package apperr defines the error taxonomy shared by handlers and services.
// Errors are classified by kind, not by matching message strings, and each
// kind maps to exactly one HTTP status.
package apperr

import (
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota // missing or malformed required input
	KindAuth                   // missing/invalid bearer credential
	KindNotFound               // no row matched (id, owner)
	KindInternal               // store failure or anything unanticipated
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Public returns the message safe to show a caller. Internal errors are
// collapsed to a generic message so no detail leaks.
func (e *Error) Public() string {
	if e.Kind == KindInternal {
		return "Internal server error"
	}
	return e.Message
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}

// Package apperr defines the coded domain errors shared by services and the HTTP layer.
//
// Services return the sentinels (optionally wrapped with %w); handlers map them
// to responses with errors.As and Code.HTTPStatus.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeMetadataParse         Code = "METADATA_PARSE_ERROR"
	CodeProvider              Code = "PROVIDER_ERROR"
	CodeGenreNotFound         Code = "GENRE_NOT_FOUND"
	CodeBookInfoNotFound      Code = "BOOKINFO_NOT_FOUND"
	CodeUserBookNotFound      Code = "USERBOOK_NOT_FOUND"
	CodeExcerptNotFound       Code = "EXCERPT_NOT_FOUND"
	CodeFriendRequestNotFound Code = "FRIEND_REQUEST_NOT_FOUND"
	CodeUserNotFound          Code = "USER_NOT_FOUND"
	CodeUnauthorizedRequest   Code = "UNAUTHORIZED_REQUEST"
	CodeUnauthenticated       Code = "UNAUTHENTICATED"
	CodeValidation            Code = "VALIDATION_ERROR"
	CodeAlreadyExists         Code = "ALREADY_EXISTS"
	CodeInternal              Code = "INTERNAL_ERROR"
)

// HTTPStatus returns the response status for the code.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeGenreNotFound, CodeBookInfoNotFound, CodeUserBookNotFound,
		CodeExcerptNotFound, CodeFriendRequestNotFound, CodeUserNotFound:
		return http.StatusNotFound
	case CodeMetadataParse, CodeProvider:
		return http.StatusBadGateway
	case CodeUnauthorizedRequest:
		return http.StatusForbidden
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain error carrying a code, a message and optional details.
type Error struct {
	Code    Code
	Message string
	Details any
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithCause returns a copy of e wrapping err.
func (e *Error) WithCause(err error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: e.Details, cause: err}
}

// WithDetails returns a copy of e carrying details.
func (e *Error) WithDetails(details any) *Error {
	return &Error{Code: e.Code, Message: e.Message, Details: details, cause: e.cause}
}

var (
	ErrMetadataParse         = &Error{Code: CodeMetadataParse, Message: "failed to parse book metadata"}
	ErrProvider              = &Error{Code: CodeProvider, Message: "book provider request failed"}
	ErrGenreNotFound         = &Error{Code: CodeGenreNotFound, Message: "genre not found"}
	ErrBookInfoNotFound      = &Error{Code: CodeBookInfoNotFound, Message: "book info not found"}
	ErrUserBookNotFound      = &Error{Code: CodeUserBookNotFound, Message: "user book not found"}
	ErrExcerptNotFound       = &Error{Code: CodeExcerptNotFound, Message: "excerpt not found"}
	ErrFriendRequestNotFound = &Error{Code: CodeFriendRequestNotFound, Message: "friend request not found"}
	ErrUserNotFound          = &Error{Code: CodeUserNotFound, Message: "user not found"}
	ErrUnauthorizedRequest   = &Error{Code: CodeUnauthorizedRequest, Message: "not allowed to perform this request"}
	ErrUnauthenticated       = &Error{Code: CodeUnauthenticated, Message: "unauthenticated"}
	ErrValidation            = &Error{Code: CodeValidation, Message: "invalid input"}
	ErrAlreadyExists         = &Error{Code: CodeAlreadyExists, Message: "already exists"}
)

// Validation creates a validation error with a custom message.
func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// MetadataParse wraps a decoding failure as a metadata parse error.
func MetadataParse(cause error) *Error {
	return ErrMetadataParse.WithCause(cause)
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Package apperr defines the error kinds shared by repositories, services and
// the HTTP layer. Only the HTTP layer maps a Kind to a status code.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Stable codes for outcomes callers need to tell apart within one Kind.
const (
	CodeInvalidCredentials    = "invalid_credentials"
	CodeDuplicateEmail        = "duplicate_email"
	CodeTokenExpired          = "token_expired"
	CodeTokenInvalidSignature = "token_invalid_signature"
	CodeTokenMalformed        = "token_malformed"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind and Code so sentinels below work with errors.Is
// regardless of the message or wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != "" {
		return e.Kind == t.Kind && e.Code == t.Code
	}
	return e.Kind == t.Kind && t.Message == "" && t.Err == nil
}

var (
	ErrInvalidCredentials    = &Error{Kind: KindUnauthenticated, Code: CodeInvalidCredentials, Message: "invalid email or password"}
	ErrDuplicateEmail        = &Error{Kind: KindValidation, Code: CodeDuplicateEmail, Message: "email already in use"}
	ErrTokenExpired          = &Error{Kind: KindUnauthenticated, Code: CodeTokenExpired, Message: "token expired"}
	ErrTokenInvalidSignature = &Error{Kind: KindUnauthenticated, Code: CodeTokenInvalidSignature, Message: "token signature is invalid"}
	ErrTokenMalformed        = &Error{Kind: KindUnauthenticated, Code: CodeTokenMalformed, Message: "token is malformed"}

	// Kind-only sentinels: errors.Is(err, apperr.ErrNotFound) matches any NotFound error.
	ErrUnauthenticated = &Error{Kind: KindUnauthenticated}
	ErrForbidden       = &Error{Kind: KindForbidden}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrConflict        = &Error{Kind: KindConflict}
	ErrValidation      = &Error{Kind: KindValidation}
	ErrInternal        = &Error{Kind: KindInternal}
)

func Unauthenticated(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthenticated, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected store or signing failure.
func Internal(err error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the client-safe message for err. Internal errors never
// expose their cause.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Kind != KindInternal {
		return appErr.Message
	}
	return "An unexpected error occurred"
}

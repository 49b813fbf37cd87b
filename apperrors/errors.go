package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the HTTP layer can pick a status and a message.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindPermission         Kind = "permission"
	KindNotFound           Kind = "not_found"
	KindInvalidState       Kind = "invalid_state"
	KindBackendUnavailable Kind = "backend_unavailable"
	KindActionFailed       Kind = "action_failed"
	KindUpdateFailed       Kind = "update_failed"
	KindDecode             Kind = "decode"
)

// Error is the error type returned by services.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the caller may reasonably try the same action again.
func (e *Error) Retryable() bool {
	return e.Kind == KindBackendUnavailable || e.Kind == KindActionFailed || e.Kind == KindUpdateFailed
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(err error, kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation builds a field-level validation error.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func Permission(message string) *Error {
	return New(KindPermission, message)
}

func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

func InvalidState(message string) *Error {
	return New(KindInvalidState, message)
}

// As extracts an *Error from anywhere in the chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err (or anything it wraps) is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// KindOf returns the kind of err, or KindActionFailed for foreign errors.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindActionFailed
}

package model

import (
	"errors"
	"fmt"
)

// Kind discriminates domain error categories. The HTTP boundary owns the
// single kind-to-status table; nothing below it inspects status codes.
type Kind int

const (
	KindInternal Kind = iota
	KindAuthenticationFailed
	KindUnauthorized
	KindForbidden
	KindAuthorizationDenied
	KindNotFound
	KindAlreadyExists
	KindValidationFailed
)

// FieldViolation describes a single invalid input field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the tagged domain error crossing service boundaries.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldViolation
}

func (e *Error) Error() string { return e.Message }

// KindOf extracts the Kind from err. Wrapped errors are unwrapped; anything
// that is not a *model.Error reports KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// FieldsOf returns the field violations attached to err, if any.
func FieldsOf(err error) []FieldViolation {
	var de *Error
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}

// ErrAuthenticationFailed creates an authentication error with a formatted message.
func ErrAuthenticationFailed(format string, args ...any) *Error {
	return &Error{Kind: KindAuthenticationFailed, Message: fmt.Sprintf(format, args...)}
}

// ErrUnauthorized creates an error for requests carrying no credentials at all.
func ErrUnauthorized(format string, args ...any) *Error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// ErrForbidden creates an error for invalid or expired credentials.
func ErrForbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// ErrAuthorizationDenied creates an ownership violation error.
func ErrAuthorizationDenied(format string, args ...any) *Error {
	return &Error{Kind: KindAuthorizationDenied, Message: fmt.Sprintf(format, args...)}
}

// ErrNotFound creates a missing record error.
func ErrNotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// ErrAlreadyExists creates a uniqueness violation error.
func ErrAlreadyExists(format string, args ...any) *Error {
	return &Error{Kind: KindAlreadyExists, Message: fmt.Sprintf(format, args...)}
}

// ErrValidationFailed creates an invalid input error carrying field violations.
func ErrValidationFailed(fields []FieldViolation) *Error {
	return &Error{Kind: KindValidationFailed, Message: "invalid request payload", Fields: fields}
}

// ErrInternal creates an unanticipated failure error.
func ErrInternal(format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

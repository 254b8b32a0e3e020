package services

import (
	"errors"
	"strings"
)

// Error kinds. Handlers map them to HTTP statuses with errors.Is.
var (
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
	ErrAccessDenied         = errors.New("access denied")
	ErrForbidden            = errors.New("forbidden")
	ErrConflict             = errors.New("conflict")
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnsupportedDirection = errors.New("unsupported translation direction")
	ErrUnauthenticated      = errors.New("could not validate credentials")
	ErrInactiveUser         = errors.New("inactive user")
	ErrUpstreamUnavailable  = errors.New("upstream service unavailable")
	ErrUpstreamFailure      = errors.New("upstream service failed")
	ErrUpstreamBadResponse  = errors.New("upstream service returned an invalid response")
	ErrStorageMisconfigured = errors.New("object storage is not configured")
)

// Error carries a client facing message alongside its kind and optional cause.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func newError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// rejectNulls fails when an update tries to clear required columns.
func rejectNulls(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return newError(ErrValidation, strings.Join(fields, ", ")+" cannot be null", nil)
}

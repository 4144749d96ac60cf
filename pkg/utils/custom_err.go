package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a service error into the HTTP-style category the
// API surfaces to callers.
type ErrorKind int

const (
	KindBadRequest ErrorKind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error { return e.Err }

func NotFoundError(message string) error {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func BadRequestError(message string) error {
	return &ServiceError{Kind: KindBadRequest, Message: message}
}

// BadRequestWrap wraps an upstream-service failure as a BadRequest with an
// operation prefix, e.g. "Geocoding failed: <upstream message>".
func BadRequestWrap(prefix string, err error) error {
	return &ServiceError{Kind: KindBadRequest, Message: fmt.Sprintf("%s: %v", prefix, err), Err: err}
}

func ForbiddenError(message string) error {
	return &ServiceError{Kind: KindForbidden, Message: message}
}

func UnauthorizedError(message string) error {
	return &ServiceError{Kind: KindUnauthorized, Message: message}
}

func ConflictError(message string) error {
	return &ServiceError{Kind: KindConflict, Message: message}
}

var ErrDatabaseError = errors.New("database error")

// KindOf extracts the error category, defaulting to Internal for plain
// errors (database failures and the like are never surfaced verbatim).
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// MessageOf returns the caller-facing message for an error.
func MessageOf(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return "Internal server error"
}

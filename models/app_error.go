package models

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError carries a user-safe message plus an internal technical detail.
// Handlers return it; controllers map Kind to the HTTP status.
type AppError struct {
	Kind      ErrorKind
	Message   string
	Technical string
}

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindPersistence
	KindUpstream
)

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{Kind: KindForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewPersistenceError(message string, cause error) *AppError {
	e := &AppError{Kind: KindPersistence, Message: message}
	if cause != nil {
		e.Technical = cause.Error()
	}
	return e
}

func NewUpstreamError(message string, cause error) *AppError {
	e := &AppError{Kind: KindUpstream, Message: message}
	if cause != nil {
		e.Technical = cause.Error()
	}
	return e
}

// AsAppError unwraps err looking for an AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the request violates a business rule on the current state.
var ErrConflict = errors.New("conflict")

// ErrForbidden indicates that the caller is authenticated but lacks the required role.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates that no caller identity could be resolved.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure, usually from the persistence layer.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-like status code, a caller-safe message and the underlying cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match an AppError against the sentinel for its status code,
// regardless of which cause it wraps.
func (e *AppError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Code == http.StatusBadRequest
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrConflict:
		return e.Code == http.StatusConflict
	case ErrInternal:
		return e.Code >= http.StatusInternalServerError
	}
	return false
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError.
func NewNotFoundError(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

// NewConflictError creates a 409 AppError for business rule violations.
func NewConflictError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

// NewDuplicateError creates a 409 AppError that also matches ErrDuplicate.
func NewDuplicateError(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrDuplicate)
}

// NewForbiddenError creates a 403 AppError.
func NewForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

// NewUnauthorizedError creates a 401 AppError.
func NewUnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

// NewInternalServerError creates a 500 AppError wrapping the cause.
func NewInternalServerError(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, err)
}

// ValidationError lists every violated field of a request.
type ValidationError struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationFailedError creates a ValidationError for the given field violations.
func NewValidationFailedError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, rule string) *ValidationError {
	return NewValidationFailedError("validation failed", map[string]string{field: rule})
}

// FieldErrors accumulates field violations before failing fast.
type FieldErrors map[string]string

// Add records a violation for field, keeping the first one reported.
func (f FieldErrors) Add(field, rule string) {
	if _, exists := f[field]; !exists {
		f[field] = rule
	}
}

// Err returns nil when no violations were recorded.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return NewValidationFailedError("validation failed", f)
}

// StatusCode maps err to the HTTP status it should be reported with.
func StatusCode(err error) int {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr.Code
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// IsExpected reports whether err is a domain outcome reported to the caller
// rather than an unexpected failure.
func IsExpected(err error) bool {
	return err != nil && StatusCode(err) < http.StatusInternalServerError
}

package apperror

import "errors"

// Sentinel kinds. Handlers map these onto HTTP statuses: validation → 400,
// unauthorized → 401, not found → 404, anything else → 500.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error carries a client-safe message alongside its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func Validation(message string) *Error {
	return &Error{Kind: ErrValidation, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

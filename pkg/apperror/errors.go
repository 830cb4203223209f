package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that carries the HTTP status it should map to.
// Detail, when set, is an operation-specific payload returned alongside
// the message; the balance drift report uses it.
type AppError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Authentication failures share fixed messages so responses never hint
// at which part of a credential was wrong.
var (
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Invalid username or password"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Invalid token"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error for malformed or
// out-of-range input. Nothing is persisted when one of these is raised;
// the caller can fix the input and retry.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// NewConsistencyError signals that stored ledger figures disagree with
// the records they are derived from. Detail carries the comparison so
// the caller can see both sides of the mismatch.
func NewConsistencyError(message string, detail interface{}) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
		Detail:  detail,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}

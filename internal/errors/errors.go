package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrItemNotFound is returned when an item id matches no row.
	ErrItemNotFound = errors.New("item not found")
	// ErrUserNotFound is returned when a user id matches no row.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned for any admin login mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidStatus is returned when a status is neither lost nor found.
	ErrInvalidStatus = errors.New("invalid status")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// IsInternal reports whether the error is a storage fault rather than a
// domain error.
func (e *HTTPError) IsInternal() bool {
	return e.StatusCode == http.StatusInternalServerError
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unknown is a
// storage fault reported with the generic fallback message.
func MapErrorToHTTP(err error, fallback string) *HTTPError {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return NewHTTPError(http.StatusNotFound, "Item not found", "ITEM_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "User not found", "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid credentials", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, "status must be lost or found", "INVALID_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, fallback, "INTERNAL_ERROR")
	}
}

package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserAlreadyExists is returned when registering an email that is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	// Login deliberately returns the same error for an unknown email and a
	// wrong password so the response does not reveal which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrPriceRequired is returned when a premium product is missing a price.
	ErrPriceRequired = errors.New("price is required for premium products")
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

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrProductNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case errors.Is(err, ErrPriceRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "PRICE_REQUIRED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

package dto

import (
	"net/http"

	"github.com/ivoirestore/backend/internal/domain/shared"
)

// Transport-only error codes. Domain codes live in the shared package.
const (
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	ErrCodeInvalidJSON     = "INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Conflicts answer 400,
// as storefront clients already expect.
var ErrorCodeHTTPStatus = map[string]int{
	// Validation errors -> 400 Bad Request
	shared.CodeValidation:   http.StatusBadRequest,
	shared.CodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:      http.StatusBadRequest,

	// Resource errors
	shared.CodeNotFound:      http.StatusNotFound,
	shared.CodeInvalidID:     http.StatusNotFound,
	shared.CodeAlreadyExists: http.StatusBadRequest,
	ErrCodeConflict:          http.StatusBadRequest,

	// Auth errors
	shared.CodeUnauthorized:       http.StatusUnauthorized,
	shared.CodeInvalidToken:       http.StatusUnauthorized,
	shared.CodeTokenExpired:       http.StatusUnauthorized,
	shared.CodeInvalidCredentials: http.StatusUnauthorized,
	shared.CodeForbidden:          http.StatusForbidden,

	// Business rule errors -> 400 Bad Request
	shared.CodeUpload:             http.StatusBadRequest,
	shared.CodeProductUnavailable: http.StatusBadRequest,
	shared.CodeInsufficientStock:  http.StatusBadRequest,

	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	shared.CodeRateLimited: http.StatusTooManyRequests,
	ErrCodeInternal:        http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

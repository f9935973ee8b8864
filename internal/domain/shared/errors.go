package shared

import "errors"

// Error codes shared by every bounded context. The HTTP layer maps them to status codes.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeInvalidID          = "INVALID_ID"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeForbidden          = "FORBIDDEN"
	CodeProductUnavailable = "PRODUCT_UNAVAILABLE"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeUpload             = "UPLOAD_ERROR"
	CodeRateLimited        = "RATE_LIMITED"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DomainError represents a domain-level error
type DomainError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches another DomainError by code, so errors.Is(err, ErrNotFound) holds for any
// not-found error regardless of its message.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying per-field details.
func NewValidationError(message string, details ...FieldError) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError creates a not-found error with a caller-facing message.
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError(CodeNotFound, "Ressource introuvable.")
	ErrInvalidID     = NewDomainError(CodeInvalidID, "Ressource introuvable. L'identifiant fourni est invalide.")
	ErrAlreadyExists = NewDomainError(CodeAlreadyExists, "Cette ressource existe déjà.")
	ErrInvalidInput  = NewDomainError(CodeInvalidInput, "Données invalides.")
	ErrUnauthorized  = NewDomainError(CodeUnauthorized, "Accès refusé. Vous devez être connecté pour accéder à cette ressource.")
	ErrForbidden     = NewDomainError(CodeForbidden, "Accès refusé. Seuls les super-admins peuvent effectuer cette action.")
)

// GetDomainError extracts a *DomainError from an error chain.
func GetDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

package dto

import "github.com/ivoirestore/backend/internal/domain/shared"

// Response is the standard API envelope
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Code    string              `json:"code,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  []shared.FieldError `json:"errors,omitempty"`
	// Stack is only filled in development.
	Stack string `json:"stack,omitempty"`
}

// ListResponse is the envelope of paginated listings
type ListResponse struct {
	Success     bool  `json:"success"`
	Count       int   `json:"count"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Data        any   `json:"data"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Admin   any    `json:"admin"`
}

// UploadResponse is returned by image uploads
type UploadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url"`
	Data    any    `json:"data,omitempty"`
}

// NewSuccessResponse creates a success response
func NewSuccessResponse(data any) Response {
	return Response{Success: true, Data: data}
}

// NewMessageResponse creates a success response with a message and optional data
func NewMessageResponse(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message string) Response {
	return Response{Success: false, Code: code, Message: message}
}

// NewValidationErrorResponse creates a 400 response listing invalid fields
func NewValidationErrorResponse(message string, details []shared.FieldError) Response {
	return Response{
		Success: false,
		Code:    shared.CodeValidation,
		Message: message,
		Errors:  details,
	}
}

// NewListResponse wraps one page of results
func NewListResponse[T any](page shared.Paginated[T]) ListResponse {
	return ListResponse{
		Success:     true,
		Count:       len(page.Items),
		Total:       page.Total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.Page,
		Data:        page.Items,
	}
}

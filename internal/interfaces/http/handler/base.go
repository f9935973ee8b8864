// Package handler holds the HTTP handlers of the IvoireStore API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/identity"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/infrastructure/config"
	"github.com/ivoirestore/backend/internal/infrastructure/logger"
	"github.com/ivoirestore/backend/internal/interfaces/http/dto"
	"github.com/ivoirestore/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// MessageInternalError replaces unexpected error messages in production.
const MessageInternalError = "Erreur interne du serveur."

// BaseHandler provides common handler utilities
type BaseHandler struct {
	env string
}

// NewBaseHandler creates the shared handler base for the given environment.
func NewBaseHandler(env string) BaseHandler {
	return BaseHandler{env: env}
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Message sends a 200 response carrying a message and optional data
func (h *BaseHandler) Message(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message, data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.NewMessageResponse(message, data))
}

// List sends one page of results
func List[T any](c *gin.Context, page shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.NewListResponse(page))
}

// HandleError translates err into the standard error envelope. Domain errors keep
// their message; anything else is a 500 whose message is hidden in production.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	if de, ok := shared.GetDomainError(err); ok {
		status := dto.GetHTTPStatus(de.Code)
		if status >= http.StatusInternalServerError {
			logger.GetGinLogger(c).Error("Request failed", zap.Error(err))
		}
		if len(de.Details) > 0 {
			resp := dto.NewValidationErrorResponse(de.Message, de.Details)
			resp.Code = de.Code
			c.JSON(status, resp)
			return
		}
		c.JSON(status, dto.NewErrorResponse(de.Code, de.Message))
		return
	}

	logger.GetGinLogger(c).Error("Unexpected error",
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)

	resp := dto.NewErrorResponse(dto.ErrCodeInternal, MessageInternalError)
	if h.env != config.EnvProduction {
		resp.Message = err.Error()
	}
	if h.env == config.EnvDevelopment {
		resp.Stack = string(debug.Stack())
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// BindJSON decodes and validates the request body into obj. It writes the error
// response itself and reports false when the body is rejected.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	if details, ok := middleware.ValidationDetails(err); ok {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(middleware.MessageInvalidData, details))
		return false
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.JSON(http.StatusRequestEntityTooLarge,
			dto.NewErrorResponse(dto.ErrCodeRequestTooLarge, middleware.MessageBodyTooLarge))
		return false
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(middleware.MessageInvalidData,
			[]shared.FieldError{{Field: typeErr.Field, Message: "Valeur invalide"}}))
		return false
	}

	resp := dto.NewErrorResponse(dto.ErrCodeInvalidJSON, middleware.MessageInvalidData)
	c.JSON(http.StatusBadRequest, resp)
	return false
}

// ParseID reads a UUID path parameter. Malformed ids answer like unknown ones.
func (h *BaseHandler) ParseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		h.HandleError(c, shared.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}

// ParsePage reads the page and limit query parameters. Non-numeric values fall back
// to the defaults.
func ParsePage(c *gin.Context, defaultLimit int) shared.Page {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	return shared.NewPage(page, limit, defaultLimit)
}

// canViewContact reports whether boutique phone numbers may be shown to the caller.
func canViewContact(c *gin.Context) bool {
	return middleware.GetCaller(c).Can(identity.CapViewContact)
}

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivoirestore/backend/internal/interfaces/http/dto"
)

// MessageBodyTooLarge is returned when a request body exceeds its limit.
const MessageBodyTooLarge = "Le corps de la requête est trop volumineux."

// BodyLimit returns a middleware that limits request body size
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeRequestTooLarge, MessageBodyTooLarge))
			return
		}

		// Chunked bodies are cut at maxBytes while being read
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ContextRequestID = "request_id"
	requestIDHeader  = "X-Request-ID"
)

// RequestID keeps a well-formed incoming X-Request-ID or mints a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.New().String()
		}
		c.Set(ContextRequestID, requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Meta carries pagination details for list responses
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type Response struct {
	Status  int               `json:"-"`                 // HTTP status code
	Success bool              `json:"success"`           // false for every 4xx/5xx
	Message string            `json:"message,omitempty"` // Optional message
	Data    interface{}       `json:"data,omitempty"`    // Response data
	Errors  map[string]string `json:"errors,omitempty"`  // Field level validation errors
	Meta    *Meta             `json:"meta,omitempty"`    // Pagination
}

func write(c *gin.Context, r *Response) {
	r.Success = r.Status < http.StatusBadRequest
	c.JSON(r.Status, r)
}

func abort(c *gin.Context, r *Response) {
	r.Success = false
	c.AbortWithStatusJSON(r.Status, r)
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	write(c, &Response{Status: http.StatusOK, Data: data})
}

func SuccessMessage(c *gin.Context, message string, data interface{}) {
	write(c, &Response{Status: http.StatusOK, Message: message, Data: data})
}

func Paginated(c *gin.Context, data interface{}, meta Meta) {
	write(c, &Response{Status: http.StatusOK, Data: data, Meta: &meta})
}

func Created(c *gin.Context, message string, data interface{}) {
	if message == "" {
		message = "Resource created successfully"
	}
	write(c, &Response{Status: http.StatusCreated, Message: message, Data: data})
}

// Error responses. They abort the chain so middleware can use them directly.
func Unauthorized(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusUnauthorized, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusBadRequest, Message: message})
}

func ValidationFailed(c *gin.Context, errs map[string]string) {
	abort(c, &Response{Status: http.StatusBadRequest, Message: "Validation failed", Errors: errs})
}

func NotFound(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusNotFound, Message: message})
}

func InternalError(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusInternalServerError, Message: message})
}

func TooManyRequests(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusTooManyRequests, Message: message})
}

func Conflict(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusConflict, Message: message})
}

func Forbidden(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusForbidden, Message: message})
}

func BadGateway(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusBadGateway, Message: message})
}

func ServiceUnavailable(c *gin.Context, message string) {
	abort(c, &Response{Status: http.StatusServiceUnavailable, Message: message})
}

package middleware

import (
	"net/http"
	"strings"

	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

// RequireJSON rejects write requests whose body is not declared as JSON
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if c.Request.ContentLength != 0 && !strings.HasPrefix(c.ContentType(), "application/json") {
				utils.BadRequest(c, "Content-Type must be application/json")
				return
			}
		}
		c.Next()
	}
}

package middleware

import (
	"runtime/debug"

	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				utils.TrackError("panic")
				utils.Log().Error().
					Interface("panic", err).
					Str("path", c.Request.URL.Path).
					Str("request_id", c.GetString(ContextRequestID)).
					Bytes("stack", debug.Stack()).
					Msg("recovered from panic")
				utils.InternalError(c, "Internal server error")
			}
		}()
		c.Next()
	}
}

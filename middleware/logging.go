package middleware

import (
	"time"

	"instituteapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= 500:
			event = utils.Log().Error()
		case status >= 400:
			event = utils.Log().Warn()
		default:
			event = utils.Log().Info()
		}

		browser, _, device := utils.ParseUserAgent(c.Request.UserAgent())
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Str("request_id", c.GetString(ContextRequestID)).
			Str("device", device).
			Str("browser", browser).
			Str("user_id", CurrentUserID(c)).
			Msg("request")
	}
}

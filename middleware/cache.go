package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl marks public GET responses cacheable for maxAge
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	value := "public, max-age=" + strconv.Itoa(int(maxAge.Seconds()))
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Header("Cache-Control", value)
		}
		c.Next()
	}
}

// NoStore keeps authenticated responses out of shared caches
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

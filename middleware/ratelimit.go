package middleware

import (
	"math"
	"strconv"
	"time"

	"instituteapi/services"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

const rateLimitMessage = "Too many requests, please try again later."

// RateLimitTier is a named fixed-window budget per client IP
type RateLimitTier struct {
	Name   string
	Limit  int64
	Window time.Duration
}

// RateLimit rejects requests over the tier budget with 429.
// Store failures let the request through.
func RateLimit(store services.RateLimitStore, tier RateLimitTier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil || tier.Limit <= 0 {
			c.Next()
			return
		}

		key := tier.Name + ":" + c.ClientIP()
		hit, err := store.Hit(c.Request.Context(), key, tier.Window)
		if err != nil {
			utils.TrackError("ratelimit")
			utils.Log().Warn().Err(err).Str("tier", tier.Name).Msg("rate limit store unavailable, allowing request")
			c.Next()
			return
		}

		remaining := tier.Limit - hit.Count
		if remaining < 0 {
			remaining = 0
		}
		resetSecs := int64(math.Ceil(time.Until(hit.ResetAt).Seconds()))
		if resetSecs < 0 {
			resetSecs = 0
		}

		c.Header("RateLimit-Limit", strconv.FormatInt(tier.Limit, 10))
		c.Header("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("RateLimit-Reset", strconv.FormatInt(resetSecs, 10))

		if hit.Count > tier.Limit {
			utils.RateLimitRejections.WithLabelValues(tier.Name).Inc()
			c.Header("Retry-After", strconv.FormatInt(resetSecs, 10))
			utils.TooManyRequests(c, rateLimitMessage)
			return
		}

		c.Next()
	}
}

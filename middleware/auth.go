package middleware

import (
	"strings"
	"time"

	"instituteapi/model"
	"instituteapi/services"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by Authenticate
const (
	ContextUserID    = "user_id"
	ContextEmail     = "email"
	ContextRole      = "role"
	ContextToken     = "token"
	ContextExpiresAt = "token_expires_at"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[7:])
}

// Authenticate requires a valid, unrevoked bearer token
func Authenticate(tokens *services.TokenService, revoker services.TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Missing or invalid token")
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "token")
			utils.Unauthorized(c, "Invalid or expired token")
			return
		}

		if revoker != nil {
			revoked, err := revoker.IsRevoked(c.Request.Context(), tokenString)
			if err != nil {
				utils.TrackError("auth")
				utils.Log().Error().Err(err).Msg("token blacklist lookup failed")
				utils.ServiceUnavailable(c, "Unable to verify token")
				return
			}
			if revoked {
				utils.Unauthorized(c, "Token has been invalidated")
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextToken, tokenString)
		if claims.ExpiresAt != nil {
			c.Set(ContextExpiresAt, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RequireRoles must run after Authenticate
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		utils.Forbidden(c, "Insufficient permissions")
	}
}

func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func CurrentRole(c *gin.Context) model.Role {
	if v, ok := c.Get(ContextRole); ok {
		if role, ok := v.(model.Role); ok {
			return role
		}
	}
	return ""
}

// CurrentToken returns the raw bearer token and its expiry
func CurrentToken(c *gin.Context) (string, time.Time) {
	var exp time.Time
	if v, ok := c.Get(ContextExpiresAt); ok {
		exp, _ = v.(time.Time)
	}
	return c.GetString(ContextToken), exp
}

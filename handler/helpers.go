package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"instituteapi/middleware"
	"instituteapi/model"
	"instituteapi/storage"
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase and storage errors onto the response envelope
func respondError(c *gin.Context, err error, resource string) {
	var verr *usecase.ValidationError
	var ferr model.FieldErrors

	switch {
	case errors.As(err, &verr):
		utils.TrackError("validation")
		utils.ValidationFailed(c, verr.Fields)
	case errors.As(err, &ferr):
		utils.TrackError("validation")
		utils.ValidationFailed(c, ferr)
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, storage.ErrObjectNotFound):
		utils.NotFound(c, resource+" not found")
	case errors.Is(err, usecase.ErrConflict):
		utils.Conflict(c, resource+" already exists")
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, usecase.ErrTwoFactorRequired):
		utils.Unauthorized(c, "Two-factor code required")
	case errors.Is(err, usecase.ErrInvalidTwoFactor):
		utils.Unauthorized(c, "Invalid two-factor code")
	case errors.Is(err, usecase.ErrUnauthorized):
		utils.Unauthorized(c, "Unauthorized")
	case errors.Is(err, usecase.ErrForbidden):
		utils.Forbidden(c, "Insufficient permissions")
	case errors.Is(err, storage.ErrMissingPath), errors.Is(err, storage.ErrInvalidPath):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, storage.ErrNotConfigured):
		utils.ServiceUnavailable(c, "Document storage is not configured")
	case errors.Is(err, storage.ErrUpstream):
		utils.TrackError("storage")
		utils.Log().Error().Err(err).Str("path", c.Request.URL.Path).Msg("document upstream failed")
		utils.BadGateway(c, "Failed to fetch document")
	case errors.Is(err, context.Canceled):
		c.Abort()
	default:
		utils.TrackError("internal")
		utils.Log().Error().
			Err(err).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString(middleware.ContextRequestID)).
			Msg("request failed")
		utils.InternalError(c, "Internal server error")
	}
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.TrackError("validation")
		utils.ValidationFailed(c, utils.ValidationErrors(err))
		return false
	}
	return true
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil {
		return def
	}
	return v
}

func pageParams(c *gin.Context) usecase.Page {
	return usecase.Page{Page: queryInt(c, "page", 1), Limit: queryInt(c, "limit", usecase.DefaultPageLimit)}.Normalize()
}

func respondPage[T any](c *gin.Context, res usecase.PageResult[T]) {
	utils.Paginated(c, res.Items, utils.Meta{Page: res.Page, Limit: res.Limit, Total: res.Total})
}

package handler

import (
	"instituteapi/repository"
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

// crud holds the handler steps every content resource shares
type crud[T any, PT usecase.Document[T]] struct {
	svc      *usecase.ContentService[T, PT]
	resource string // singular, used in messages
}

func (h crud[T, PT]) list(c *gin.Context, filter repository.Filter) {
	res, err := h.svc.List(c.Request.Context(), filter, pageParams(c))
	if err != nil {
		respondError(c, err, h.resource)
		return
	}
	respondPage(c, res)
}

func (h crud[T, PT]) latest(c *gin.Context, filter repository.Filter) {
	items, err := h.svc.Latest(c.Request.Context(), filter, queryInt(c, "limit", usecase.DefaultLatestLimit))
	if err != nil {
		respondError(c, err, h.resource)
		return
	}
	utils.Success(c, items)
}

func (h crud[T, PT]) get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, h.resource)
		return
	}
	utils.Success(c, doc)
}

func (h crud[T, PT]) create(c *gin.Context, doc *T) {
	created, err := h.svc.Create(c.Request.Context(), doc)
	if err != nil {
		respondError(c, err, h.resource)
		return
	}
	utils.Created(c, h.resource+" created successfully", created)
}

func (h crud[T, PT]) update(c *gin.Context, apply func(*T)) {
	updated, err := h.svc.Update(c.Request.Context(), c.Param("id"), apply)
	if err != nil {
		respondError(c, err, h.resource)
		return
	}
	utils.SuccessMessage(c, h.resource+" updated successfully", updated)
}

func (h crud[T, PT]) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, h.resource)
		return
	}
	utils.SuccessMessage(c, h.resource+" deleted successfully", nil)
}

func (h crud[T, PT]) categories(c *gin.Context, filter repository.Filter) {
	cats, err := h.svc.Categories(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, h.resource)
		return
	}
	utils.Success(c, cats)
}

func (h crud[T, PT]) byCategory(c *gin.Context, filter repository.Filter) {
	res, err := h.svc.ByCategory(c.Request.Context(), c.Param("category"), filter, pageParams(c))
	if err != nil {
		respondError(c, err, h.resource)
		return
	}
	respondPage(c, res)
}

// optionalFilter adds query parameters that were supplied
func optionalFilter(c *gin.Context, params ...string) repository.Filter {
	f := repository.Filter{}
	for _, p := range params {
		if v := c.Query(p); v != "" {
			f[p] = v
		}
	}
	return f
}

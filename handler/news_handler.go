package handler

import (
	"instituteapi/dto"
	"instituteapi/model"
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

type NewsHandler struct {
	svc *usecase.NewsService
	crud[model.NewsBlog, *model.NewsBlog]
}

func NewNewsHandler(svc *usecase.NewsService) *NewsHandler {
	return &NewsHandler{svc: svc, crud: crud[model.NewsBlog, *model.NewsBlog]{svc: svc.ContentService, resource: "News blog"}}
}

func (h *NewsHandler) List(c *gin.Context)       { h.list(c, optionalFilter(c, "category", "status")) }
func (h *NewsHandler) Categories(c *gin.Context) { h.categories(c, nil) }
func (h *NewsHandler) ByCategory(c *gin.Context) { h.byCategory(c, optionalFilter(c, "status")) }
func (h *NewsHandler) Get(c *gin.Context)        { h.get(c) }
func (h *NewsHandler) Delete(c *gin.Context)     { h.delete(c) }

// Latest lists published posts only
func (h *NewsHandler) Latest(c *gin.Context) {
	items, err := h.svc.LatestPublished(c.Request.Context(), queryInt(c, "limit", usecase.DefaultLatestLimit))
	if err != nil {
		respondError(c, err, "News blog")
		return
	}
	utils.Success(c, items)
}

func (h *NewsHandler) Create(c *gin.Context) {
	var in dto.NewsInput
	if !bindJSON(c, &in) {
		return
	}
	h.create(c, in.Model())
}

func (h *NewsHandler) Update(c *gin.Context) {
	var patch dto.NewsPatch
	if !bindJSON(c, &patch) {
		return
	}
	h.update(c, patch.Apply)
}

package handler

import (
	"instituteapi/dto"
	"instituteapi/model"
	"instituteapi/usecase"

	"github.com/gin-gonic/gin"
)

type PublicationHandler struct {
	crud[model.Publication, *model.Publication]
}

func NewPublicationHandler(svc *usecase.PublicationService) *PublicationHandler {
	return &PublicationHandler{crud: crud[model.Publication, *model.Publication]{svc: svc.ContentService, resource: "Publication"}}
}

func (h *PublicationHandler) List(c *gin.Context)       { h.list(c, optionalFilter(c, "category")) }
func (h *PublicationHandler) Latest(c *gin.Context)     { h.latest(c, optionalFilter(c, "category")) }
func (h *PublicationHandler) Categories(c *gin.Context) { h.categories(c, nil) }
func (h *PublicationHandler) ByCategory(c *gin.Context) { h.byCategory(c, nil) }
func (h *PublicationHandler) Get(c *gin.Context)        { h.get(c) }
func (h *PublicationHandler) Delete(c *gin.Context)     { h.delete(c) }

func (h *PublicationHandler) Create(c *gin.Context) {
	var in dto.PublicationInput
	if !bindJSON(c, &in) {
		return
	}
	h.create(c, in.Model())
}

func (h *PublicationHandler) Update(c *gin.Context) {
	var patch dto.PublicationPatch
	if !bindJSON(c, &patch) {
		return
	}
	h.update(c, patch.Apply)
}

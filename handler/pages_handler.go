package handler

import (
	"instituteapi/dto"
	"instituteapi/model"
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

type HomeContentHandler struct {
	svc *usecase.PageContentService[model.HomeContent, *model.HomeContent]
}

func NewHomeContentHandler(svc *usecase.PageContentService[model.HomeContent, *model.HomeContent]) *HomeContentHandler {
	return &HomeContentHandler{svc: svc}
}

func (h *HomeContentHandler) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "Home content")
		return
	}
	utils.Success(c, doc)
}

// Save handles PUT and PATCH
func (h *HomeContentHandler) Save(c *gin.Context) {
	var patch dto.HomeContentPatch
	if !bindJSON(c, &patch) {
		return
	}
	doc, err := h.svc.Save(c.Request.Context(), patch.Apply)
	if err != nil {
		respondError(c, err, "Home content")
		return
	}
	utils.SuccessMessage(c, "Home content saved successfully", doc)
}

type JournalContentHandler struct {
	svc *usecase.PageContentService[model.JournalContent, *model.JournalContent]
}

func NewJournalContentHandler(svc *usecase.PageContentService[model.JournalContent, *model.JournalContent]) *JournalContentHandler {
	return &JournalContentHandler{svc: svc}
}

func (h *JournalContentHandler) Get(c *gin.Context) {
	doc, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "Journal content")
		return
	}
	utils.Success(c, doc)
}

func (h *JournalContentHandler) Save(c *gin.Context) {
	var patch dto.JournalContentPatch
	if !bindJSON(c, &patch) {
		return
	}
	doc, err := h.svc.Save(c.Request.Context(), patch.Apply)
	if err != nil {
		respondError(c, err, "Journal content")
		return
	}
	utils.SuccessMessage(c, "Journal content saved successfully", doc)
}

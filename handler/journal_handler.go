package handler

import (
	"strconv"

	"instituteapi/dto"
	"instituteapi/model"
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

type JournalArticleHandler struct {
	svc *usecase.JournalArticleService
	crud[model.JournalArticle, *model.JournalArticle]
}

func NewJournalArticleHandler(svc *usecase.JournalArticleService) *JournalArticleHandler {
	return &JournalArticleHandler{
		svc:  svc,
		crud: crud[model.JournalArticle, *model.JournalArticle]{svc: svc.ContentService, resource: "Journal article"},
	}
}

func (h *JournalArticleHandler) List(c *gin.Context)       { h.list(c, optionalFilter(c, "category")) }
func (h *JournalArticleHandler) Latest(c *gin.Context)     { h.latest(c, nil) }
func (h *JournalArticleHandler) Categories(c *gin.Context) { h.categories(c, nil) }
func (h *JournalArticleHandler) ByCategory(c *gin.Context) { h.byCategory(c, nil) }
func (h *JournalArticleHandler) Get(c *gin.Context)        { h.get(c) }
func (h *JournalArticleHandler) Delete(c *gin.Context)     { h.delete(c) }

func (h *JournalArticleHandler) ByVolumeIssue(c *gin.Context) {
	volume, verr := strconv.Atoi(c.Param("volume"))
	issue, ierr := strconv.Atoi(c.Param("issue"))
	if verr != nil || ierr != nil {
		utils.BadRequest(c, "volume and issue must be numbers")
		return
	}
	res, err := h.svc.ByVolumeIssue(c.Request.Context(), volume, issue, pageParams(c))
	if err != nil {
		respondError(c, err, "Journal article")
		return
	}
	respondPage(c, res)
}

func (h *JournalArticleHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Journal article")
		return
	}
	utils.Success(c, stats)
}

func (h *JournalArticleHandler) Create(c *gin.Context) {
	var in dto.JournalArticleInput
	if !bindJSON(c, &in) {
		return
	}
	article, err := in.Model()
	if err != nil {
		respondError(c, err, "Journal article")
		return
	}
	h.create(c, article)
}

func (h *JournalArticleHandler) Update(c *gin.Context) {
	var patch dto.JournalArticlePatch
	if !bindJSON(c, &patch) {
		return
	}
	if err := patch.Check(); err != nil {
		respondError(c, err, "Journal article")
		return
	}
	h.update(c, patch.Apply)
}

type JournalVolumeHandler struct {
	crud[model.JournalVolume, *model.JournalVolume]
}

func NewJournalVolumeHandler(svc *usecase.JournalVolumeService) *JournalVolumeHandler {
	return &JournalVolumeHandler{crud: crud[model.JournalVolume, *model.JournalVolume]{svc: svc.ContentService, resource: "Journal volume"}}
}

func (h *JournalVolumeHandler) List(c *gin.Context)   { h.list(c, nil) }
func (h *JournalVolumeHandler) Latest(c *gin.Context) { h.latest(c, nil) }
func (h *JournalVolumeHandler) Get(c *gin.Context)    { h.get(c) }
func (h *JournalVolumeHandler) Delete(c *gin.Context) { h.delete(c) }

func (h *JournalVolumeHandler) Create(c *gin.Context) {
	var in dto.JournalVolumeInput
	if !bindJSON(c, &in) {
		return
	}
	volume, err := in.Model()
	if err != nil {
		respondError(c, err, "Journal volume")
		return
	}
	h.create(c, volume)
}

func (h *JournalVolumeHandler) Update(c *gin.Context) {
	var patch dto.JournalVolumePatch
	if !bindJSON(c, &patch) {
		return
	}
	if err := patch.Check(); err != nil {
		respondError(c, err, "Journal volume")
		return
	}
	h.update(c, patch.Apply)
}

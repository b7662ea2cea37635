package handler

import (
	"instituteapi/dto"
	"instituteapi/model"
	"instituteapi/usecase"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	crud[model.Staff, *model.Staff]
}

func NewStaffHandler(svc *usecase.StaffService) *StaffHandler {
	return &StaffHandler{crud: crud[model.Staff, *model.Staff]{svc: svc.ContentService, resource: "Staff member"}}
}

func (h *StaffHandler) List(c *gin.Context)   { h.list(c, nil) }
func (h *StaffHandler) Get(c *gin.Context)    { h.get(c) }
func (h *StaffHandler) Delete(c *gin.Context) { h.delete(c) }

func (h *StaffHandler) Create(c *gin.Context) {
	var in dto.StaffInput
	if !bindJSON(c, &in) {
		return
	}
	h.create(c, in.Model())
}

func (h *StaffHandler) Update(c *gin.Context) {
	var patch dto.StaffPatch
	if !bindJSON(c, &patch) {
		return
	}
	h.update(c, patch.Apply)
}

type ResourcePersonHandler struct {
	crud[model.ResourcePerson, *model.ResourcePerson]
}

func NewResourcePersonHandler(svc *usecase.ResourcePersonService) *ResourcePersonHandler {
	return &ResourcePersonHandler{crud: crud[model.ResourcePerson, *model.ResourcePerson]{svc: svc.ContentService, resource: "Resource person"}}
}

func (h *ResourcePersonHandler) List(c *gin.Context)   { h.list(c, nil) }
func (h *ResourcePersonHandler) Get(c *gin.Context)    { h.get(c) }
func (h *ResourcePersonHandler) Delete(c *gin.Context) { h.delete(c) }

func (h *ResourcePersonHandler) Create(c *gin.Context) {
	var in dto.ResourcePersonInput
	if !bindJSON(c, &in) {
		return
	}
	h.create(c, in.Model())
}

func (h *ResourcePersonHandler) Update(c *gin.Context) {
	var patch dto.ResourcePersonPatch
	if !bindJSON(c, &patch) {
		return
	}
	h.update(c, patch.Apply)
}

package handler

import (
	"instituteapi/dto"
	"instituteapi/model"
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *usecase.EventService
	crud[model.Event, *model.Event]
}

func NewEventHandler(svc *usecase.EventService) *EventHandler {
	return &EventHandler{svc: svc, crud: crud[model.Event, *model.Event]{svc: svc.ContentService, resource: "Event"}}
}

func (h *EventHandler) List(c *gin.Context)   { h.list(c, optionalFilter(c, "status")) }
func (h *EventHandler) Latest(c *gin.Context) { h.latest(c, optionalFilter(c, "status")) }
func (h *EventHandler) Get(c *gin.Context)    { h.get(c) }
func (h *EventHandler) Delete(c *gin.Context) { h.delete(c) }

func (h *EventHandler) Create(c *gin.Context) {
	var in dto.EventInput
	if !bindJSON(c, &in) {
		return
	}
	h.create(c, in.Model())
}

func (h *EventHandler) Update(c *gin.Context) {
	var patch dto.EventPatch
	if !bindJSON(c, &patch) {
		return
	}
	h.update(c, patch.Apply)
}

func (h *EventHandler) UpdateStatus(c *gin.Context) {
	var in dto.EventStatusInput
	if !bindJSON(c, &in) {
		return
	}
	event, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), in.Status)
	if err != nil {
		respondError(c, err, "Event")
		return
	}
	utils.SuccessMessage(c, "Event status updated successfully", event)
}

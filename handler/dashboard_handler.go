package handler

import (
	"instituteapi/usecase"
	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc *usecase.DashboardService
}

func NewDashboardHandler(svc *usecase.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Dashboard")
		return
	}
	utils.Success(c, stats)
}

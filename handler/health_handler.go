package handler

import (
	"context"
	"net/http"
	"time"

	"instituteapi/utils"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by thin adapters over the mongo and redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	Mongo   Pinger
	Redis   Pinger // nil when redis is not configured
	Started time.Time
	Version string

	IncludeSystem bool
}

type componentStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func check(ctx context.Context, p Pinger) componentStatus {
	if p == nil {
		return componentStatus{Status: "disabled"}
	}
	if err := p.Ping(ctx); err != nil {
		return componentStatus{Status: "down", Error: err.Error()}
	}
	return componentStatus{Status: "up"}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := check(ctx, h.Mongo)
	redisStatus := check(ctx, h.Redis)

	body := gin.H{
		"status":  "ok",
		"version": h.Version,
		"uptime":  time.Since(h.Started).Round(time.Second).String(),
		"components": gin.H{
			"mongo": mongoStatus,
			"redis": redisStatus,
		},
	}
	if h.IncludeSystem {
		body["system"] = utils.GetSystemSnapshot(ctx)
	}

	if mongoStatus.Status == "down" || redisStatus.Status == "down" {
		body["status"] = "degraded"
		c.JSON(http.StatusServiceUnavailable, utils.Response{Success: false, Message: "Service degraded", Data: body})
		return
	}
	utils.Success(c, body)
}

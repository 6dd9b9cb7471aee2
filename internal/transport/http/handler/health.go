package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docqa/internal/service"
)

// StatusReporter exposes what the pipeline currently serves.
type StatusReporter interface {
	Status() service.Status
}

type HealthHandler struct {
	name      string
	startedAt time.Time
	status    StatusReporter
}

func NewHealthHandler(name string, startedAt time.Time, status StatusReporter) *HealthHandler {
	return &HealthHandler{name: name, startedAt: startedAt, status: status}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":        h.name,
		"uptime_sec": int(time.Since(h.startedAt).Seconds()),
		"index":      h.status.Status(),
	})
}

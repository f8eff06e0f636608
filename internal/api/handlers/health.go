package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"citysentry-worker-go/internal/services/stream"
)

type HealthHandler struct {
	registry  *stream.Registry
	workerID  string
	version   string
	startTime time.Time
}

func NewHealthHandler(registry *stream.Registry, workerID, version string) *HealthHandler {
	return &HealthHandler{
		registry:  registry,
		workerID:  workerID,
		version:   version,
		startTime: time.Now(),
	}
}

// WorkerInfo returns worker identity
// @Summary Worker information
// @Description Basic identity and version of this worker
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) WorkerInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":   "citysentry-worker",
		"worker_id": h.workerID,
		"version":   h.version,
		"uptime":    time.Since(h.startTime).String(),
	})
}

// HealthCheck reports camera connectivity
// @Summary Health check
// @Description Count of connected vs. total cameras
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	connected, total := h.registry.Counts()
	c.JSON(http.StatusOK, gin.H{
		"status":            "ok",
		"cameras_total":     total,
		"cameras_connected": connected,
	})
}

package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"citysentry-worker-go/internal/services/storage"
	"citysentry-worker-go/internal/services/stream"
)

type SystemHandler struct {
	registry *stream.Registry
	store    *storage.Store
}

func NewSystemHandler(registry *stream.Registry, store *storage.Store) *SystemHandler {
	return &SystemHandler{
		registry: registry,
		store:    store,
	}
}

// GetStats returns aggregate worker statistics
// @Summary Aggregate stats
// @Description Per-camera counters plus persisted detection counts by label
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /system/stats [get]
func (h *SystemHandler) GetStats(c *gin.Context) {
	counts, err := h.store.CountsByLabel()
	if err != nil {
		log.Error().Err(err).Msg("Failed to aggregate detection counts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate detection counts"})
		return
	}

	connected, total := h.registry.Counts()
	c.JSON(http.StatusOK, gin.H{
		"cameras":           h.registry.AllStats(),
		"cameras_total":     total,
		"cameras_connected": connected,
		"persisted":         counts,
	})
}

// GetDebugInfo returns runtime internals
// @Summary Debug info
// @Description Go runtime internals for troubleshooting
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /system/debug [get]
func (h *SystemHandler) GetDebugInfo(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	c.JSON(http.StatusOK, gin.H{
		"goroutines":    runtime.NumGoroutine(),
		"heap_alloc_mb": mem.HeapAlloc / 1024 / 1024,
		"heap_sys_mb":   mem.HeapSys / 1024 / 1024,
		"num_gc":        mem.NumGC,
		"go_version":    runtime.Version(),
		"num_cpu":       runtime.NumCPU(),
		"gomaxprocs":    runtime.GOMAXPROCS(0),
	})
}

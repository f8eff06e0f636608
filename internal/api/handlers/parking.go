package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"citysentry-worker-go/internal/models"
	"citysentry-worker-go/internal/services/storage"
)

const defaultEventLimit = 50

type ParkingHandler struct {
	store *storage.Store
}

func NewParkingHandler(store *storage.Store) *ParkingHandler {
	return &ParkingHandler{store: store}
}

// ListEvents returns parking events, newest first
// @Summary List parking events
// @Description Parking events newest first, with optional camera and resolution filters
// @Tags parking
// @Produce json
// @Param camera_id query string false "Filter by camera"
// @Param resolved query boolean false "Filter by resolution state"
// @Param limit query int false "Maximum events to return (default 50)"
// @Success 200 {array} models.ParkingEvent
// @Failure 500 {object} ErrorResponse
// @Router /parking/events [get]
func (h *ParkingHandler) ListEvents(c *gin.Context) {
	cameraID := c.Query("camera_id")

	var resolved *bool
	if raw := c.Query("resolved"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resolved must be a boolean"})
			return
		}
		resolved = &value
	}

	limit := defaultEventLimit
	if raw := c.Query("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = value
	}

	events, err := h.store.ParkingEvents(cameraID, resolved, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to query parking events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query parking events"})
		return
	}
	if events == nil {
		events = []models.ParkingEvent{}
	}

	c.JSON(http.StatusOK, events)
}

// ResolveEvent marks a parking event as handled
// @Summary Resolve a parking event
// @Description Mark a parking event as handled by an officer
// @Tags parking
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param request body models.ResolveRequest true "Resolution details"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /parking/events/{event_id}/resolve [post]
func (h *ParkingHandler) ResolveEvent(c *gin.Context) {
	eventID := c.Param("event_id")

	var req models.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ok, err := h.store.ResolveParkingEvent(eventID, req.Officer, req.Notes)
	if err != nil {
		log.Error().Err(err).Str("event_id", eventID).Msg("Failed to resolve parking event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve parking event"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found or already resolved"})
		return
	}

	log.Info().Str("event_id", eventID).Str("officer", req.Officer).Msg("Parking event resolved")
	c.JSON(http.StatusOK, gin.H{"message": "Event resolved"})
}

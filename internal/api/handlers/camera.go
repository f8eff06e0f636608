package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"citysentry-worker-go/internal/models"
	"citysentry-worker-go/internal/services/stream"
)

// CameraRegistrar starts a processor for a registration request.
type CameraRegistrar interface {
	RegisterCamera(req *models.CameraRequest) error
}

type CameraHandler struct {
	registry  *stream.Registry
	registrar CameraRegistrar
}

func NewCameraHandler(registry *stream.Registry, registrar CameraRegistrar) *CameraHandler {
	return &CameraHandler{
		registry:  registry,
		registrar: registrar,
	}
}

// AddCamera registers a camera stream
// @Summary Register a camera
// @Description Register a camera stream with optional no-parking zones
// @Tags cameras
// @Accept json
// @Produce json
// @Param request body models.CameraRequest true "Camera configuration"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cameras [post]
func (h *CameraHandler) AddCamera(c *gin.Context) {
	var req models.CameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error().Err(err).Msg("Invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.registrar.RegisterCamera(&req); err != nil {
		log.Error().Err(err).Str("camera_id", req.CameraID).Msg("Failed to register camera")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	log.Info().
		Str("camera_id", req.CameraID).
		Str("url", req.StreamURL).
		Int("zones", len(req.ParkingZones)).
		Msg("Camera registered successfully")

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Camera %s registered", req.CameraID)})
}

// RemoveCamera unregisters a camera stream
// @Summary Remove a camera
// @Description Stop and remove a camera stream
// @Tags cameras
// @Param camera_id path string true "Camera ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /cameras/{camera_id} [delete]
func (h *CameraHandler) RemoveCamera(c *gin.Context) {
	cameraID := c.Param("camera_id")

	if err := h.registry.Remove(cameraID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	log.Info().Str("camera_id", cameraID).Msg("Camera removed successfully")
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Camera %s removed", cameraID)})
}

// ListCameras lists all registered cameras
// @Summary List cameras
// @Description Stats snapshot for every registered camera
// @Tags cameras
// @Produce json
// @Success 200 {array} models.CameraStats
// @Router /cameras [get]
func (h *CameraHandler) ListCameras(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.AllStats())
}

// GetCameraStats returns stats for one camera
// @Summary Camera stats
// @Description Stats snapshot for a single camera
// @Tags cameras
// @Param camera_id path string true "Camera ID"
// @Produce json
// @Success 200 {object} models.CameraStats
// @Failure 404 {object} ErrorResponse
// @Router /cameras/{camera_id}/stats [get]
func (h *CameraHandler) GetCameraStats(c *gin.Context) {
	cameraID := c.Param("camera_id")

	p, ok := h.registry.Get(cameraID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camera not found"})
		return
	}

	c.JSON(http.StatusOK, p.Stats())
}

// GetLatestFrame returns the newest annotated frame
// @Summary Latest frame
// @Description Most recent annotated JPEG frame for a camera
// @Tags cameras
// @Param camera_id path string true "Camera ID"
// @Produce jpeg
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /cameras/{camera_id}/frame [get]
func (h *CameraHandler) GetLatestFrame(c *gin.Context) {
	cameraID := c.Param("camera_id")

	p, ok := h.registry.Get(cameraID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camera not found"})
		return
	}

	frame, ok := p.LatestFrame()
	if !ok {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No frame available yet"})
		return
	}

	c.Data(http.StatusOK, "image/jpeg", frame)
}

// StreamMJPEG serves a continuous MJPEG stream of annotated frames
// @Summary MJPEG stream
// @Description Continuous multipart JPEG stream of annotated frames
// @Tags cameras
// @Param camera_id path string true "Camera ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /cameras/{camera_id}/stream [get]
func (h *CameraHandler) StreamMJPEG(c *gin.Context) {
	cameraID := c.Param("camera_id")

	p, ok := h.registry.Get(cameraID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Camera not found"})
		return
	}

	c.Header("Content-Type", "multipart/x-mixed-replace; boundary=frame")

	ticker := time.NewTicker(40 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
			frame, ok := p.LatestFrame()
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(c.Writer,
				"--frame\r\nContent-Type: image/jpeg\r\nContent-Length: %d\r\n\r\n", len(frame)); err != nil {
				return
			}
			if _, err := c.Writer.Write(frame); err != nil {
				return
			}
			if _, err := c.Writer.Write([]byte("\r\n")); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

package detectors

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"citysentry-worker-go/internal/models"
)

// Minimum confidence for litter-proxy detections. Lower than the vehicle
// threshold because small discarded objects score weakly.
const litterConfidence = 0.35

// Object classes treated as stand-ins for litter. Detection models rarely
// have a dedicated trash class, so discarded food and tableware classes
// are relabeled trash_proxy with the original class kept in metadata.
var trashProxyLabels = map[string]bool{
	"bottle":     true,
	"cup":        true,
	"bowl":       true,
	"banana":     true,
	"apple":      true,
	"sandwich":   true,
	"orange":     true,
	"broccoli":   true,
	"carrot":     true,
	"hot dog":    true,
	"pizza":      true,
	"donut":      true,
	"cake":       true,
	"wine glass": true,
	"fork":       true,
	"knife":      true,
	"spoon":      true,
}

// LitterDetector emits every box above its confidence threshold,
// relabeling likely-litter classes to the trash proxy tag. It is
// stateless: every qualifying box is emitted on every detection cycle,
// with downstream deduplication deciding what gets persisted.
type LitterDetector struct {
	capability Capability
	timeout    time.Duration
}

func NewLitterDetector(capability Capability, timeout time.Duration) *LitterDetector {
	return &LitterDetector{
		capability: capability,
		timeout:    timeout,
	}
}

func (d *LitterDetector) Name() string {
	return "litter"
}

func (d *LitterDetector) Detect(frame gocv.Mat, cameraID string) []models.Detection {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	boxes, err := d.capability.Infer(ctx, frame, cameraID)
	if err != nil {
		log.Error().Err(err).Str("camera_id", cameraID).Msg("Litter detector inference failed")
		return nil
	}

	now := time.Now()
	var events []models.Detection
	for _, box := range boxes {
		if box.Confidence < litterConfidence {
			continue
		}

		label := strings.ToLower(box.Label)
		meta := map[string]any{"detector": d.Name()}
		if trashProxyLabels[label] {
			meta["original_label"] = label
			label = models.LabelTrashProxy
		}

		events = append(events, models.Detection{
			Label:      label,
			Confidence: box.Confidence,
			BBox:       box.BBox,
			Timestamp:  now,
			CameraID:   cameraID,
			Meta:       meta,
		})
	}
	return events
}

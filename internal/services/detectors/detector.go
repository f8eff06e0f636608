package detectors

import (
	"context"

	"gocv.io/x/gocv"

	"citysentry-worker-go/internal/models"
)

// RawBox is a single labeled box as returned by the inference capability,
// before any detector policy is applied.
type RawBox struct {
	Label      string
	Confidence float64
	BBox       [4]int // [x1, y1, x2, y2]
}

// Capability is the raw inference interface detectors wrap with domain policy.
// Implementations must be safe for concurrent use.
type Capability interface {
	Infer(ctx context.Context, frame gocv.Mat, cameraID string) ([]RawBox, error)
}

// Detector turns raw inference output into domain events for one camera.
// A detector instance belongs to a single stream processor and is only
// ever called from that processor's goroutine, so implementations may
// keep unsynchronized per-camera state.
type Detector interface {
	Name() string
	Detect(frame gocv.Mat, cameraID string) []models.Detection
}

// ZoneProvider is implemented by detectors that operate on configured
// polygonal zones, so the annotation layer can draw them.
type ZoneProvider interface {
	Zones() []models.Zone
}

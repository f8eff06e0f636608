package models

import (
	"time"
)

// Label assigned to dwell-violation events emitted by the parking detector.
const LabelIllegalParking = "illegal_parking"

// Label assigned to likely-litter classes by the litter detector.
const LabelTrashProxy = "trash_proxy"

// Detection represents a single detector emission: a labeled, confidence-scored
// box in the pixel space of the canonical resized frame. Detections are values;
// once created they are never mutated.
type Detection struct {
	Label      string         `json:"label"`
	Confidence float64        `json:"confidence"`
	BBox       [4]int         `json:"bbox"` // [x1, y1, x2, y2] with x1<x2, y1<y2
	Timestamp  time.Time      `json:"timestamp"`
	CameraID   string         `json:"camera_id"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// Center returns the bbox center point.
func (d Detection) Center() (int, int) {
	return (d.BBox[0] + d.BBox[2]) / 2, (d.BBox[1] + d.BBox[3]) / 2
}

// GroundPoint returns the bottom-center pixel of the bbox, the representative
// position used for zone-containment tests.
func (d Detection) GroundPoint() (int, int) {
	return (d.BBox[0] + d.BBox[2]) / 2, d.BBox[3]
}

// CameraStats is a per-camera statistics snapshot. The owning stream processor
// is the sole writer; external callers only ever see copies.
type CameraStats struct {
	CameraID   string  `json:"camera_id"`
	StreamURL  string  `json:"stream_url"`
	FramesRead int64   `json:"frames_read"`
	Detections int64   `json:"detections"`
	Errors     int64   `json:"errors"`
	FPS        float64 `json:"fps"`
	Connected  bool    `json:"connected"`
}

// ParkingEvent is a persisted illegal-parking record with officer resolution
// state, as stored in the parking_events table.
type ParkingEvent struct {
	EventID    string         `json:"event_id"`
	CameraID   string         `json:"camera_id"`
	Label      string         `json:"label"`
	Confidence float64        `json:"confidence"`
	BBox       [4]int         `json:"bbox"`
	Timestamp  time.Time      `json:"timestamp"`
	Meta       map[string]any `json:"meta,omitempty"`
	Snapshot   string         `json:"snapshot,omitempty"`
	Resolved   bool           `json:"resolved"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
	Officer    string         `json:"officer,omitempty"`
	Notes      string         `json:"notes,omitempty"`
}

// DetectionCounts aggregates persisted detections by label.
type DetectionCounts struct {
	Total   int64            `json:"total"`
	ByLabel map[string]int64 `json:"by_label"`
}

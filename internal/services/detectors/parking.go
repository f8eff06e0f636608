package detectors

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"citysentry-worker-go/internal/models"
)

// Minimum confidence for a box to be considered a vehicle.
const vehicleConfidence = 0.50

// Minimum IoU for a detected box to continue an existing track.
const iouMatchThreshold = 0.35

var vehicleLabels = map[string]bool{
	"car":        true,
	"truck":      true,
	"bus":        true,
	"motorcycle": true,
	"bicycle":    true,
}

type vehicleTrack struct {
	bbox      [4]int
	firstSeen time.Time
	alerted   bool
}

// ParkingDetector watches configured no-parking zones and emits an
// illegal_parking event once a vehicle has dwelled inside a zone beyond
// the configured threshold. Tracks are matched frame to frame by IoU;
// a track that goes unmatched for a single detection cycle is dropped,
// which resets the dwell clock if the vehicle reappears.
type ParkingDetector struct {
	capability Capability
	zones      []models.Zone
	dwell      time.Duration
	timeout    time.Duration

	tracks  map[int]*vehicleTrack
	trackID int
	order   []int // track ids in creation order, for deterministic matching

	now func() time.Time
}

func NewParkingDetector(capability Capability, zones []models.Zone, dwell, timeout time.Duration) *ParkingDetector {
	return &ParkingDetector{
		capability: capability,
		zones:      zones,
		dwell:      dwell,
		timeout:    timeout,
		tracks:     make(map[int]*vehicleTrack),
		now:        time.Now,
	}
}

func (d *ParkingDetector) Name() string {
	return "parking"
}

func (d *ParkingDetector) Zones() []models.Zone {
	return d.zones
}

func (d *ParkingDetector) Detect(frame gocv.Mat, cameraID string) []models.Detection {
	if len(d.zones) == 0 {
		log.Debug().Str("camera_id", cameraID).Msg("No parking zones configured, skipping parking detection")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	boxes, err := d.capability.Infer(ctx, frame, cameraID)
	if err != nil {
		log.Error().Err(err).Str("camera_id", cameraID).Msg("Parking detector inference failed")
		return nil
	}

	now := d.now()
	var events []models.Detection
	var matched [][4]int

	for _, box := range boxes {
		if !vehicleLabels[strings.ToLower(box.Label)] || box.Confidence < vehicleConfidence {
			continue
		}

		// Zone membership is judged by the ground-contact point, the
		// bottom-center of the box, not the box center.
		gx := (box.BBox[0] + box.BBox[2]) / 2
		gy := box.BBox[3]
		if !zonesContain(d.zones, gx, gy) {
			continue
		}

		matched = append(matched, box.BBox)
		id := d.matchOrCreate(box.BBox, now)
		track := d.tracks[id]

		dwelled := now.Sub(track.firstSeen)
		if dwelled >= d.dwell && !track.alerted {
			track.alerted = true
			events = append(events, models.Detection{
				Label:      models.LabelIllegalParking,
				Confidence: box.Confidence,
				BBox:       box.BBox,
				Timestamp:  now,
				CameraID:   cameraID,
				Meta: map[string]any{
					"detector":      d.Name(),
					"vehicle_label": strings.ToLower(box.Label),
					"dwell_seconds": math.Round(dwelled.Seconds()*10) / 10,
					"track_id":      id,
				},
			})
			log.Warn().
				Str("camera_id", cameraID).
				Str("vehicle", strings.ToLower(box.Label)).
				Float64("dwell_seconds", dwelled.Seconds()).
				Int("track_id", id).
				Msg("Illegal parking detected")
		}
	}

	d.prune(matched)
	return events
}

// matchOrCreate finds the track with the highest IoU above the match
// threshold, updating its box, or creates a fresh track. Ties keep the
// earliest-created track.
func (d *ParkingDetector) matchOrCreate(bbox [4]int, now time.Time) int {
	bestID := -1
	bestIoU := iouMatchThreshold
	for _, id := range d.order {
		if score := IoU(bbox, d.tracks[id].bbox); score > bestIoU {
			bestIoU = score
			bestID = id
		}
	}

	if bestID >= 0 {
		d.tracks[bestID].bbox = bbox
		return bestID
	}

	d.trackID++
	id := d.trackID
	d.tracks[id] = &vehicleTrack{bbox: bbox, firstSeen: now}
	d.order = append(d.order, id)
	return id
}

// prune drops every track that no current in-zone vehicle box overlaps
// at or above the match threshold.
func (d *ParkingDetector) prune(current [][4]int) {
	kept := d.order[:0]
	for _, id := range d.order {
		track := d.tracks[id]
		alive := false
		for _, bbox := range current {
			if IoU(bbox, track.bbox) >= iouMatchThreshold {
				alive = true
				break
			}
		}
		if alive {
			kept = append(kept, id)
		} else {
			delete(d.tracks, id)
		}
	}
	d.order = kept
}

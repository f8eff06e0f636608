package detectors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"citysentry-worker-go/internal/models"
)

// fakeCapability returns a scripted sequence of inference results, one per
// Infer call, repeating the last entry once the script runs out.
type fakeCapability struct {
	script [][]RawBox
	errs   []error
	calls  int
}

func (f *fakeCapability) Infer(_ context.Context, _ gocv.Mat, _ string) ([]RawBox, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if len(f.script) == 0 {
		return nil, nil
	}
	if i >= len(f.script) {
		i = len(f.script) - 1
	}
	return f.script[i], nil
}

func bottomThirdZone() models.Zone {
	return models.Zone{{0, 320}, {640, 320}, {640, 480}, {0, 480}}
}

// steppedClock advances a fixed amount per call, starting at base.
func steppedClock(base time.Time, step time.Duration) func() time.Time {
	tick := -1
	return func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * step)
	}
}

func newTestParkingDetector(cap Capability, zones []models.Zone) *ParkingDetector {
	return NewParkingDetector(cap, zones, 10*time.Second, time.Second)
}

func TestParkingDetectorAlertOnce(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	vehicle := RawBox{Label: "car", Confidence: 0.9, BBox: [4]int{100, 300, 300, 460}}
	cap := &fakeCapability{script: [][]RawBox{{vehicle}}}

	d := newTestParkingDetector(cap, []models.Zone{bottomThirdZone()})

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	d.now = steppedClock(base, time.Second)

	// 11 detection cycles at one cycle per second. Dwell crosses the 10s
	// threshold on cycle index 10 and must fire exactly once.
	var events []models.Detection
	var fireCycle int
	for cycle := 0; cycle < 11; cycle++ {
		got := d.Detect(frame, "cam1")
		if len(got) > 0 {
			fireCycle = cycle
			events = append(events, got...)
		}
	}

	require.Len(t, events, 1)
	assert.Equal(t, 10, fireCycle)

	ev := events[0]
	assert.Equal(t, models.LabelIllegalParking, ev.Label)
	assert.Equal(t, "cam1", ev.CameraID)
	assert.Equal(t, [4]int{100, 300, 300, 460}, ev.BBox)
	assert.Equal(t, "car", ev.Meta["vehicle_label"])
	assert.Equal(t, 10.0, ev.Meta["dwell_seconds"])
	assert.Equal(t, 1, ev.Meta["track_id"])
}

func TestParkingDetectorTrackContinuity(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	// The box drifts slightly between cycles but keeps IoU well above the
	// match threshold, so the dwell timer must not reset.
	cap := &fakeCapability{script: [][]RawBox{
		{{Label: "truck", Confidence: 0.8, BBox: [4]int{100, 300, 300, 460}}},
		{{Label: "truck", Confidence: 0.8, BBox: [4]int{110, 300, 310, 460}}},
		{{Label: "truck", Confidence: 0.8, BBox: [4]int{105, 305, 305, 460}}},
	}}

	d := newTestParkingDetector(cap, []models.Zone{bottomThirdZone()})
	d.dwell = 2 * time.Second
	d.now = steppedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Second)

	assert.Empty(t, d.Detect(frame, "cam1")) // t=0
	assert.Empty(t, d.Detect(frame, "cam1")) // t=1
	events := d.Detect(frame, "cam1")        // t=2, dwell reached
	require.Len(t, events, 1)
	assert.Equal(t, 1, events[0].Meta["track_id"])
}

func TestParkingDetectorPruneResetsDwell(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	vehicle := RawBox{Label: "car", Confidence: 0.9, BBox: [4]int{100, 300, 300, 460}}
	cap := &fakeCapability{script: [][]RawBox{
		{vehicle},
		{}, // vehicle gone, track pruned
		{vehicle},
		{vehicle},
	}}

	d := newTestParkingDetector(cap, []models.Zone{bottomThirdZone()})
	d.dwell = 2 * time.Second
	d.now = steppedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Second)

	assert.Empty(t, d.Detect(frame, "cam1")) // t=0, track 1 created
	assert.Empty(t, d.Detect(frame, "cam1")) // t=1, track 1 pruned
	assert.Empty(t, d.Detect(frame, "cam1")) // t=2, track 2 created, dwell restarts
	assert.Empty(t, d.Detect(frame, "cam1")) // t=3, dwell only 1s

	events := d.Detect(frame, "cam1") // t=4, dwell 2s on the new track
	require.Len(t, events, 1)
	assert.Equal(t, 2, events[0].Meta["track_id"])
}

func TestParkingDetectorFiltersLabelsAndConfidence(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	cap := &fakeCapability{script: [][]RawBox{{
		{Label: "person", Confidence: 0.99, BBox: [4]int{100, 300, 300, 460}},
		{Label: "car", Confidence: 0.40, BBox: [4]int{100, 300, 300, 460}},
	}}}

	d := newTestParkingDetector(cap, []models.Zone{bottomThirdZone()})
	d.dwell = 0
	d.now = steppedClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), time.Second)

	assert.Empty(t, d.Detect(frame, "cam1"))
	assert.Empty(t, d.tracks)
}

func TestParkingDetectorIgnoresVehiclesOutsideZones(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	// Ground-contact point (200, 160) is in the top half of the frame,
	// outside the bottom-third zone.
	cap := &fakeCapability{script: [][]RawBox{{
		{Label: "car", Confidence: 0.9, BBox: [4]int{100, 40, 300, 160}},
	}}}

	d := newTestParkingDetector(cap, []models.Zone{bottomThirdZone()})
	d.dwell = 0

	assert.Empty(t, d.Detect(frame, "cam1"))
	assert.Empty(t, d.tracks)
}

func TestParkingDetectorNoZonesIsNoOp(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	cap := &fakeCapability{script: [][]RawBox{{
		{Label: "car", Confidence: 0.9, BBox: [4]int{100, 300, 300, 460}},
	}}}

	d := newTestParkingDetector(cap, nil)
	assert.Empty(t, d.Detect(frame, "cam1"))
	assert.Zero(t, cap.calls, "capability must not be invoked without zones")
}

func TestParkingDetectorInferenceErrorReturnsEmpty(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	cap := &fakeCapability{errs: []error{assert.AnError}}
	d := newTestParkingDetector(cap, []models.Zone{bottomThirdZone()})

	assert.Empty(t, d.Detect(frame, "cam1"))
}

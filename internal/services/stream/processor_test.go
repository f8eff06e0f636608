package stream

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"citysentry-worker-go/internal/config"
	"citysentry-worker-go/internal/models"
	"citysentry-worker-go/internal/services/detectors"
)

func testConfig() *config.Config {
	return &config.Config{
		FrameWidth:        64,
		FrameHeight:       48,
		DetectionInterval: 5,
		JPEGQuality:       75,
		ReconnectDelay:    10 * time.Millisecond,
		DedupCooldown:     5 * time.Second,
	}
}

// fakeSource serves a fixed number of copies of one frame, then fails.
type fakeSource struct {
	mat    gocv.Mat
	frames int
	reads  int
}

func (f *fakeSource) Read(m *gocv.Mat) bool {
	if f.reads >= f.frames {
		return false
	}
	f.reads++
	f.mat.CopyTo(m)
	return true
}

func (f *fakeSource) Close() error { return nil }

// fakeOpener hands out queued sources, then fails every further open.
type fakeOpener struct {
	mu      sync.Mutex
	sources []FrameSource
	opens   int
}

func (f *fakeOpener) open(string) (FrameSource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.opens++
	if len(f.sources) == 0 {
		return nil, errors.New("source unavailable")
	}
	src := f.sources[0]
	f.sources = f.sources[1:]
	return src, nil
}

func (f *fakeOpener) openCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens
}

// countingDetector counts invocations and replays a scripted emission
// on every call.
type countingDetector struct {
	calls int32
	emit  []models.Detection
}

func (d *countingDetector) Name() string { return "counting" }

func (d *countingDetector) Detect(_ gocv.Mat, _ string) []models.Detection {
	atomic.AddInt32(&d.calls, 1)
	return d.emit
}

func (d *countingDetector) callCount() int32 {
	return atomic.LoadInt32(&d.calls)
}

type fakeStore struct {
	mu         sync.Mutex
	detections []models.Detection
	parking    []models.Detection
}

func (s *fakeStore) RecordDetection(det models.Detection, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detections = append(s.detections, det)
	return nil
}

func (s *fakeStore) RecordParkingEvent(det models.Detection, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parking = append(s.parking, det)
	return "event-1", nil
}

func (s *fakeStore) counts() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.detections), len(s.parking)
}

type fakeAlerts struct {
	mu       sync.Mutex
	eventIDs []string
}

func (a *fakeAlerts) PublishParkingAlert(_ models.Detection, eventID, _ string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.eventIDs = append(a.eventIDs, eventID)
	return nil
}

func (a *fakeAlerts) published() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.eventIDs...)
}

func testFrame(t *testing.T) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSize(48, 64, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return mat
}

func newTestProcessor(t *testing.T, cfg *config.Config, opener *fakeOpener,
	dets []detectors.Detector, store EventStore, alerts AlertPublisher) *Processor {
	t.Helper()
	p := NewProcessor(cfg, "cam1", "rtsp://test/stream", dets, store, nil, alerts)
	p.openSource = opener.open
	t.Cleanup(func() {
		p.Stop()
		select {
		case <-p.Done():
		case <-time.After(5 * time.Second):
			t.Fatal("processor did not stop")
		}
	})
	return p
}

func TestProcessorDetectionScheduling(t *testing.T) {
	mat := testFrame(t)
	opener := &fakeOpener{sources: []FrameSource{&fakeSource{mat: mat, frames: 10}}}
	detector := &countingDetector{}
	store := &fakeStore{}

	p := newTestProcessor(t, testConfig(), opener, []detectors.Detector{detector}, store, nil)
	p.Start()

	// 10 frames at interval 5: inference on frames 5 and 10 only.
	require.Eventually(t, func() bool {
		return p.Stats().FramesRead == 10
	}, 5*time.Second, 10*time.Millisecond)

	assert.Equal(t, int32(2), detector.callCount())
}

func TestProcessorReconnectsAfterReadFailure(t *testing.T) {
	mat := testFrame(t)
	opener := &fakeOpener{sources: []FrameSource{
		&fakeSource{mat: mat, frames: 3},
		&fakeSource{mat: mat, frames: 1 << 30},
	}}
	store := &fakeStore{}

	p := newTestProcessor(t, testConfig(), opener, nil, store, nil)
	p.Start()

	require.Eventually(t, func() bool {
		stats := p.Stats()
		return stats.Connected && stats.Errors >= 1 && stats.FramesRead > 3
	}, 5*time.Second, 10*time.Millisecond)

	assert.GreaterOrEqual(t, opener.openCount(), 2)
}

func TestProcessorSurvivesOpenFailure(t *testing.T) {
	opener := &fakeOpener{} // every open fails
	store := &fakeStore{}

	p := newTestProcessor(t, testConfig(), opener, nil, store, nil)
	p.Start()

	require.Eventually(t, func() bool {
		return p.Stats().Errors >= 3
	}, 5*time.Second, 10*time.Millisecond)

	stats := p.Stats()
	assert.False(t, stats.Connected)
	assert.Zero(t, stats.FramesRead)
}

func TestProcessorLatestFrame(t *testing.T) {
	mat := testFrame(t)
	opener := &fakeOpener{sources: []FrameSource{&fakeSource{mat: mat, frames: 1 << 30}}}
	store := &fakeStore{}

	p := newTestProcessor(t, testConfig(), opener, nil, store, nil)

	_, ok := p.LatestFrame()
	assert.False(t, ok, "no frame before start")

	p.Start()
	require.Eventually(t, func() bool {
		_, ok := p.LatestFrame()
		return ok
	}, 5*time.Second, 10*time.Millisecond)

	frame, ok := p.LatestFrame()
	require.True(t, ok)
	require.GreaterOrEqual(t, len(frame), 2)
	assert.Equal(t, []byte{0xff, 0xd8}, frame[:2], "latest frame is JPEG encoded")
}

func TestProcessorPersistenceDispatch(t *testing.T) {
	mat := testFrame(t)
	opener := &fakeOpener{sources: []FrameSource{&fakeSource{mat: mat, frames: 1 << 30}}}
	store := &fakeStore{}
	alerts := &fakeAlerts{}

	detector := &countingDetector{emit: []models.Detection{
		{Label: models.LabelIllegalParking, Confidence: 0.9, BBox: [4]int{10, 10, 40, 40}, CameraID: "cam1"},
		{Label: models.LabelTrashProxy, Confidence: 0.5, BBox: [4]int{50, 10, 60, 20}, CameraID: "cam1"},
	}}

	p := newTestProcessor(t, testConfig(), opener, []detectors.Detector{detector}, store, alerts)
	p.Start()

	require.Eventually(t, func() bool {
		return detector.callCount() >= 3
	}, 5*time.Second, 10*time.Millisecond)

	// The same two detections repeat every cycle, but the dedup window
	// collapses each to a single persisted record.
	generic, parking := store.counts()
	assert.Equal(t, 1, generic)
	assert.Equal(t, 1, parking)
	assert.Equal(t, []string{"event-1"}, alerts.published())
}

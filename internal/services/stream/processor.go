package stream

import (
	"fmt"
	"image"
	"image/color"
	"sync"
	"time"

	"github.com/VividCortex/ewma"
	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"

	"citysentry-worker-go/internal/config"
	"citysentry-worker-go/internal/models"
	"citysentry-worker-go/internal/services/detectors"
)

// Recompute the FPS estimate after this many frames.
const fpsSampleFrames = 30

// FrameSource is one open connection to a video source.
// *gocv.VideoCapture satisfies it directly.
type FrameSource interface {
	Read(m *gocv.Mat) bool
	Close() error
}

// SourceOpener opens a connection to a stream URL.
type SourceOpener func(url string) (FrameSource, error)

func openVideoCapture(url string) (FrameSource, error) {
	capture, err := gocv.OpenVideoCapture(url)
	if err != nil {
		return nil, err
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("video source not opened: %s", url)
	}
	return capture, nil
}

// EventStore receives detections that survive deduplication.
type EventStore interface {
	RecordDetection(det models.Detection, snapshotRef string) error
	RecordParkingEvent(det models.Detection, snapshotRef string) (string, error)
}

// SnapshotSaver writes an evidence image and returns its reference.
type SnapshotSaver interface {
	Save(frame gocv.Mat, label, cameraID string, bbox [4]int) (string, error)
}

// AlertPublisher pushes persisted parking events to downstream consumers.
type AlertPublisher interface {
	PublishParkingAlert(det models.Detection, eventID, snapshotRef string) error
}

// Processor owns one camera: the connection lifecycle, the frame loop,
// detection scheduling, annotation, deduplication and the latest-frame
// cache. All pipeline state is written only by the processor's own
// goroutine; the mutex exists for external readers of the frame cache
// and stats snapshot.
type Processor struct {
	cfg       *config.Config
	cameraID  string
	streamURL string
	detectors []detectors.Detector

	store     EventStore
	snapshots SnapshotSaver
	alerts    AlertPublisher

	openSource SourceOpener

	mu     sync.RWMutex
	latest []byte
	stats  models.CameraStats
	fpsAvg ewma.MovingAverage

	lastDetections []models.Detection
	dedup          *dedupFilter

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	doneCh    chan struct{}
}

func NewProcessor(cfg *config.Config, cameraID, streamURL string, dets []detectors.Detector,
	store EventStore, snapshots SnapshotSaver, alerts AlertPublisher) *Processor {
	return &Processor{
		cfg:        cfg,
		cameraID:   cameraID,
		streamURL:  streamURL,
		detectors:  dets,
		store:      store,
		snapshots:  snapshots,
		alerts:     alerts,
		openSource: openVideoCapture,
		stats: models.CameraStats{
			CameraID:  cameraID,
			StreamURL: streamURL,
		},
		fpsAvg: ewma.NewMovingAverage(),
		dedup:  newDedupFilter(cfg.DedupCooldown),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (p *Processor) CameraID() string {
	return p.cameraID
}

// Start launches the background frame loop. Safe to call once.
func (p *Processor) Start() {
	p.startOnce.Do(func() {
		go p.run()
	})
}

// Stop requests shutdown. The loop observes the request at the top of
// each iteration and during retry waits. Idempotent.
func (p *Processor) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopCh)
	})
}

// Done is closed once the background loop has fully exited.
func (p *Processor) Done() <-chan struct{} {
	return p.doneCh
}

// Stats returns a copy of the current counters.
func (p *Processor) Stats() models.CameraStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.stats
}

// LatestFrame returns the newest encoded frame, or false if no frame
// has been published yet.
func (p *Processor) LatestFrame() ([]byte, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.latest == nil {
		return nil, false
	}
	return p.latest, true
}

func (p *Processor) stopped() bool {
	select {
	case <-p.stopCh:
		return true
	default:
		return false
	}
}

// run is the connect/stream/reconnect lifecycle. It only exits on an
// explicit stop request; every source failure funnels back into a
// delayed reconnect attempt.
func (p *Processor) run() {
	defer close(p.doneCh)
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("camera_id", p.cameraID).Interface("panic", r).
				Msg("Stream processor panicked")
		}
	}()

	for {
		if p.stopped() {
			return
		}

		source, err := p.openSource(p.streamURL)
		if err != nil {
			log.Warn().Err(err).
				Str("camera_id", p.cameraID).
				Str("url", p.streamURL).
				Msg("Failed to open video source, retrying")
			p.recordError()
			if !p.waitRetry() {
				return
			}
			continue
		}

		p.setConnected(true)
		log.Info().Str("camera_id", p.cameraID).Msg("Video source connected")

		p.streamLoop(source)

		source.Close()
		p.setConnected(false)

		if p.stopped() {
			return
		}
		if !p.waitRetry() {
			return
		}
	}
}

// streamLoop reads frames until the source fails or a stop is requested.
func (p *Processor) streamLoop(source FrameSource) {
	img := gocv.NewMat()
	defer img.Close()

	frameCount := 0
	fpsFrames := 0
	fpsStart := time.Now()

	for {
		if p.stopped() {
			return
		}

		if ok := source.Read(&img); !ok || img.Empty() {
			log.Warn().Str("camera_id", p.cameraID).Msg("Frame read failed, reconnecting")
			p.recordError()
			return
		}

		// All zone coordinates assume the canonical frame size.
		if img.Cols() != p.cfg.FrameWidth || img.Rows() != p.cfg.FrameHeight {
			gocv.Resize(img, &img, image.Pt(p.cfg.FrameWidth, p.cfg.FrameHeight), 0, 0, gocv.InterpolationLinear)
		}

		frameCount++
		fpsFrames++
		p.mu.Lock()
		p.stats.FramesRead++
		p.mu.Unlock()

		if fpsFrames >= fpsSampleFrames {
			if elapsed := time.Since(fpsStart).Seconds(); elapsed > 0 {
				p.fpsAvg.Add(float64(fpsFrames) / elapsed)
				p.mu.Lock()
				p.stats.FPS = p.fpsAvg.Value()
				p.mu.Unlock()
			}
			fpsFrames = 0
			fpsStart = time.Now()
		}

		// Inference runs every Nth frame; in between the previous
		// detection list is reused so the annotated output stays smooth.
		if frameCount%p.cfg.DetectionInterval == 0 {
			p.lastDetections = p.runDetectors(img)
		}
		dets := p.lastDetections

		p.mu.Lock()
		p.stats.Detections += int64(len(dets))
		p.mu.Unlock()

		p.publishFrame(img, dets)
	}
}

// runDetectors invokes every detector and persists what survives
// deduplication.
func (p *Processor) runDetectors(frame gocv.Mat) []models.Detection {
	var all []models.Detection
	for _, d := range p.detectors {
		for _, det := range d.Detect(frame, p.cameraID) {
			all = append(all, det)
			p.persist(frame, det)
		}
	}
	return all
}

func (p *Processor) persist(frame gocv.Mat, det models.Detection) {
	if !p.dedup.allow(det) {
		return
	}

	var snapshotRef string
	if p.snapshots != nil {
		ref, err := p.snapshots.Save(frame, det.Label, det.CameraID, det.BBox)
		if err != nil {
			log.Error().Err(err).Str("camera_id", det.CameraID).Msg("Failed to save snapshot")
		} else {
			snapshotRef = ref
		}
	}

	if det.Label == models.LabelIllegalParking {
		eventID, err := p.store.RecordParkingEvent(det, snapshotRef)
		if err != nil {
			log.Error().Err(err).Str("camera_id", det.CameraID).Msg("Failed to persist parking event")
			return
		}
		if p.alerts != nil {
			if err := p.alerts.PublishParkingAlert(det, eventID, snapshotRef); err != nil {
				log.Error().Err(err).Str("event_id", eventID).Msg("Failed to publish parking alert")
			}
		}
		return
	}

	if err := p.store.RecordDetection(det, snapshotRef); err != nil {
		log.Error().Err(err).Str("camera_id", det.CameraID).Msg("Failed to persist detection")
	}
}

// publishFrame annotates, encodes and swaps the frame into the
// latest-frame cache.
func (p *Processor) publishFrame(frame gocv.Mat, dets []models.Detection) {
	annotated := p.annotate(frame, dets)
	defer annotated.Close()

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, annotated,
		[]int{gocv.IMWriteJpegQuality, p.cfg.JPEGQuality})
	if err != nil {
		log.Error().Err(err).Str("camera_id", p.cameraID).Msg("Failed to encode frame")
		return
	}
	defer buf.Close()

	encoded := make([]byte, len(buf.GetBytes()))
	copy(encoded, buf.GetBytes())

	p.mu.Lock()
	p.latest = encoded
	p.mu.Unlock()
}

func (p *Processor) annotate(frame gocv.Mat, dets []models.Detection) gocv.Mat {
	out := frame.Clone()

	for _, d := range p.detectors {
		zp, ok := d.(detectors.ZoneProvider)
		if !ok {
			continue
		}
		yellow := color.RGBA{R: 255, G: 255}
		for _, zone := range zp.Zones() {
			pts := make([]image.Point, 0, len(zone))
			for _, v := range zone {
				pts = append(pts, image.Pt(v[0], v[1]))
			}
			pv := gocv.NewPointsVectorFromPoints([][]image.Point{pts})
			gocv.Polylines(&out, pv, true, yellow, 2)
			pv.Close()
		}
	}

	for _, det := range dets {
		boxColor := color.RGBA{G: 255}
		if det.Label == models.LabelIllegalParking {
			boxColor = color.RGBA{R: 255}
		}

		rect := image.Rect(det.BBox[0], det.BBox[1], det.BBox[2], det.BBox[3])
		gocv.Rectangle(&out, rect, boxColor, 2)

		text := fmt.Sprintf("%s %.0f%%", det.Label, det.Confidence*100)
		gocv.PutText(&out, text, image.Pt(det.BBox[0], det.BBox[1]-8),
			gocv.FontHersheySimplex, 0.5, boxColor, 2)
	}

	return out
}

func (p *Processor) setConnected(connected bool) {
	p.mu.Lock()
	p.stats.Connected = connected
	p.mu.Unlock()
}

func (p *Processor) recordError() {
	p.mu.Lock()
	p.stats.Errors++
	p.mu.Unlock()
}

// waitRetry sleeps the reconnect delay, returning false if a stop was
// requested meanwhile.
func (p *Processor) waitRetry() bool {
	select {
	case <-p.stopCh:
		return false
	case <-time.After(p.cfg.ReconnectDelay):
		return true
	}
}

package stream

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"citysentry-worker-go/internal/models"
)

// Registry is the concurrency-safe set of running processors, keyed by
// camera id. It owns processor lifecycle: Add starts, Remove stops.
type Registry struct {
	mu         sync.RWMutex
	processors map[string]*Processor
	maxCameras int
	removeWait time.Duration
}

func NewRegistry(maxCameras int, removeWait time.Duration) *Registry {
	return &Registry{
		processors: make(map[string]*Processor),
		maxCameras: maxCameras,
		removeWait: removeWait,
	}
}

// Add registers and starts a processor. Duplicate camera ids are
// rejected and the existing processor is left untouched.
func (r *Registry) Add(p *Processor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.processors[p.CameraID()]; exists {
		return fmt.Errorf("camera %s is already registered", p.CameraID())
	}
	if r.maxCameras > 0 && len(r.processors) >= r.maxCameras {
		return fmt.Errorf("camera limit reached (%d)", r.maxCameras)
	}

	r.processors[p.CameraID()] = p
	p.Start()

	log.Info().Str("camera_id", p.CameraID()).Int("cameras", len(r.processors)).
		Msg("Camera registered")
	return nil
}

// Remove stops and evicts a processor, waiting up to the configured
// bound for its loop to exit. After the bound, removal proceeds anyway
// so a wedged source read cannot deadlock the registry.
func (r *Registry) Remove(cameraID string) error {
	r.mu.Lock()
	p, exists := r.processors[cameraID]
	if !exists {
		r.mu.Unlock()
		return fmt.Errorf("camera %s not found", cameraID)
	}
	delete(r.processors, cameraID)
	r.mu.Unlock()

	p.Stop()
	select {
	case <-p.Done():
	case <-time.After(r.removeWait):
		log.Warn().Str("camera_id", cameraID).Dur("waited", r.removeWait).
			Msg("Processor did not stop within bound, removing anyway")
	}

	log.Info().Str("camera_id", cameraID).Msg("Camera removed")
	return nil
}

// Get looks up a processor; absence is not an error.
func (r *Registry) Get(cameraID string) (*Processor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.processors[cameraID]
	return p, ok
}

// AllStats snapshots every processor's counters. Each entry is
// internally consistent; the list as a whole is not atomic.
func (r *Registry) AllStats() []models.CameraStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]models.CameraStats, 0, len(r.processors))
	for _, p := range r.processors {
		stats = append(stats, p.Stats())
	}
	return stats
}

// Counts returns (connected, total) camera counts.
func (r *Registry) Counts() (int, int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connected := 0
	for _, p := range r.processors {
		if p.Stats().Connected {
			connected++
		}
	}
	return connected, len(r.processors)
}

// StopAll stops every processor and waits for each within the removal
// bound. Idempotent; used at process teardown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	processors := make([]*Processor, 0, len(r.processors))
	for _, p := range r.processors {
		processors = append(processors, p)
	}
	r.processors = make(map[string]*Processor)
	r.mu.Unlock()

	for _, p := range processors {
		p.Stop()
	}
	for _, p := range processors {
		select {
		case <-p.Done():
		case <-time.After(r.removeWait):
			log.Warn().Str("camera_id", p.CameraID()).
				Msg("Processor did not stop within bound during shutdown")
		}
	}

	if len(processors) > 0 {
		log.Info().Int("cameras", len(processors)).Msg("All camera processors stopped")
	}
}

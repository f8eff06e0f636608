package stream

import (
	"time"

	"citysentry-worker-go/internal/models"
)

type dedupKey struct {
	label string
	cx    int
	cy    int
}

// dedupFilter suppresses repeat persistence of the same condition: two
// detections sharing (label, bbox center) within the cooldown window
// collapse to one persisted record. Owned by a single processor
// goroutine, so no locking.
type dedupFilter struct {
	window time.Duration
	seen   map[dedupKey]time.Time
	now    func() time.Time
}

func newDedupFilter(window time.Duration) *dedupFilter {
	return &dedupFilter{
		window: window,
		seen:   make(map[dedupKey]time.Time),
		now:    time.Now,
	}
}

// allow reports whether the detection should be persisted, stamping the
// key when it is. Expired entries are dropped as they are revisited.
func (f *dedupFilter) allow(det models.Detection) bool {
	cx, cy := det.Center()
	key := dedupKey{label: det.Label, cx: cx, cy: cy}

	now := f.now()
	if last, ok := f.seen[key]; ok {
		if now.Sub(last) < f.window {
			return false
		}
	}
	f.seen[key] = now

	if len(f.seen) > 1024 {
		f.sweep(now)
	}
	return true
}

func (f *dedupFilter) sweep(now time.Time) {
	for key, last := range f.seen {
		if now.Sub(last) >= f.window {
			delete(f.seen, key)
		}
	}
}

package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"citysentry-worker-go/internal/models"
)

func TestDedupFilter(t *testing.T) {
	det := models.Detection{Label: "trash_proxy", BBox: [4]int{10, 10, 50, 50}}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := base
	f := newDedupFilter(5 * time.Second)
	f.now = func() time.Time { return now }

	t.Run("first occurrence persists", func(t *testing.T) {
		assert.True(t, f.allow(det))
	})

	t.Run("repeat within window is suppressed", func(t *testing.T) {
		now = base.Add(3 * time.Second)
		assert.False(t, f.allow(det))
	})

	t.Run("repeat after window persists again", func(t *testing.T) {
		now = base.Add(6 * time.Second)
		assert.True(t, f.allow(det))
	})

	t.Run("different label is an independent key", func(t *testing.T) {
		other := det
		other.Label = "bottle"
		assert.True(t, f.allow(other))
	})

	t.Run("different center is an independent key", func(t *testing.T) {
		moved := det
		moved.BBox = [4]int{200, 200, 240, 240}
		assert.True(t, f.allow(moved))
	})

	t.Run("suppression does not refresh the stamp", func(t *testing.T) {
		// The suppressed call at t=8s must not extend the window opened
		// at t=6s, so t=11.5s persists.
		now = base.Add(8 * time.Second)
		assert.False(t, f.allow(det))
		now = base.Add(11500 * time.Millisecond)
		assert.True(t, f.allow(det))
	})
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneContains(t *testing.T) {
	zone := Zone{{0, 320}, {640, 320}, {640, 480}, {0, 480}}

	t.Run("interior point", func(t *testing.T) {
		assert.True(t, zone.Contains(200, 460))
	})

	t.Run("exterior point", func(t *testing.T) {
		assert.False(t, zone.Contains(200, 160))
	})

	t.Run("boundary counts as inside", func(t *testing.T) {
		assert.True(t, zone.Contains(200, 320), "point on top edge")
		assert.True(t, zone.Contains(0, 320), "corner vertex")
		assert.True(t, zone.Contains(640, 480), "far corner vertex")
	})

	t.Run("degenerate polygon", func(t *testing.T) {
		assert.False(t, Zone{{0, 0}, {10, 10}}.Contains(5, 5))
		assert.False(t, Zone(nil).Contains(5, 5))
	})
}

func TestZoneContainsConcave(t *testing.T) {
	// L-shaped region; the notch at the top right is outside.
	zone := Zone{{0, 0}, {100, 0}, {100, 50}, {50, 50}, {50, 100}, {0, 100}}

	assert.True(t, zone.Contains(25, 75))
	assert.True(t, zone.Contains(75, 25))
	assert.False(t, zone.Contains(75, 75))
}

func TestDetectionPoints(t *testing.T) {
	d := Detection{BBox: [4]int{100, 300, 300, 460}}

	cx, cy := d.Center()
	assert.Equal(t, 200, cx)
	assert.Equal(t, 380, cy)

	gx, gy := d.GroundPoint()
	assert.Equal(t, 200, gx)
	assert.Equal(t, 460, gy)
}

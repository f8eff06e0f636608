package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citysentry-worker-go/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleDetection(label, camera string, ts time.Time) models.Detection {
	return models.Detection{
		Label:      label,
		Confidence: 0.8,
		BBox:       [4]int{100, 300, 300, 460},
		Timestamp:  ts,
		CameraID:   camera,
		Meta:       map[string]any{"detector": "test"},
	}
}

func TestStoreCountsByLabel(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	require.NoError(t, store.RecordDetection(sampleDetection("trash_proxy", "cam1", now), ""))
	require.NoError(t, store.RecordDetection(sampleDetection("trash_proxy", "cam2", now), "snap.jpg"))
	require.NoError(t, store.RecordDetection(sampleDetection("person", "cam1", now), ""))

	counts, err := store.CountsByLabel()
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Total)
	assert.Equal(t, int64(2), counts.ByLabel["trash_proxy"])
	assert.Equal(t, int64(1), counts.ByLabel["person"])
}

func TestStoreParkingEventLifecycle(t *testing.T) {
	store := newTestStore(t)

	det := sampleDetection(models.LabelIllegalParking, "cam1", time.Now())
	det.Meta = map[string]any{"vehicle_label": "car", "dwell_seconds": 10.0}

	eventID, err := store.RecordParkingEvent(det, "snap.jpg")
	require.NoError(t, err)
	require.NotEmpty(t, eventID)

	events, err := store.ParkingEvents("cam1", nil, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, eventID, ev.EventID)
	assert.Equal(t, models.LabelIllegalParking, ev.Label)
	assert.Equal(t, [4]int{100, 300, 300, 460}, ev.BBox)
	assert.Equal(t, "snap.jpg", ev.Snapshot)
	assert.Equal(t, "car", ev.Meta["vehicle_label"])
	assert.False(t, ev.Resolved)

	ok, err := store.ResolveParkingEvent(eventID, "officer-7", "towed")
	require.NoError(t, err)
	assert.True(t, ok)

	// Resolving twice is a no-op.
	ok, err = store.ResolveParkingEvent(eventID, "officer-8", "")
	require.NoError(t, err)
	assert.False(t, ok)

	events, err = store.ParkingEvents("cam1", nil, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Resolved)
	assert.Equal(t, "officer-7", events[0].Officer)
	assert.Equal(t, "towed", events[0].Notes)
	assert.NotNil(t, events[0].ResolvedAt)
}

func TestStoreParkingEventFilters(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		camera := "cam1"
		if i == 2 {
			camera = "cam2"
		}
		id, err := store.RecordParkingEvent(
			sampleDetection(models.LabelIllegalParking, camera, base.Add(time.Duration(i)*time.Minute)), "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	ok, err := store.ResolveParkingEvent(ids[0], "officer-1", "")
	require.NoError(t, err)
	require.True(t, ok)

	t.Run("newest first", func(t *testing.T) {
		events, err := store.ParkingEvents("", nil, 10)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, ids[2], events[0].EventID)
		assert.Equal(t, ids[0], events[2].EventID)
	})

	t.Run("camera filter", func(t *testing.T) {
		events, err := store.ParkingEvents("cam2", nil, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, ids[2], events[0].EventID)
	})

	t.Run("resolved filter", func(t *testing.T) {
		unresolved := false
		events, err := store.ParkingEvents("", &unresolved, 10)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("limit", func(t *testing.T) {
		events, err := store.ParkingEvents("", nil, 1)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, ids[2], events[0].EventID)
	})

	t.Run("resolving unknown event", func(t *testing.T) {
		ok, err := store.ResolveParkingEvent("no-such-event", "officer-1", "")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

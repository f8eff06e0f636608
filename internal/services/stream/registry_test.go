package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryProcessor(t *testing.T, cameraID string) *Processor {
	t.Helper()
	opener := &fakeOpener{} // opens always fail; the loop just retries
	p := NewProcessor(testConfig(), cameraID, "rtsp://test/"+cameraID, nil, &fakeStore{}, nil, nil)
	p.openSource = opener.open
	return p
}

func newTestRegistry() *Registry {
	return NewRegistry(10, time.Second)
}

func TestRegistryRejectsDuplicateCamera(t *testing.T) {
	r := newTestRegistry()
	defer r.StopAll()

	first := registryProcessor(t, "cam1")
	require.NoError(t, r.Add(first))

	err := r.Add(registryProcessor(t, "cam1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	// The original processor is untouched.
	got, ok := r.Get("cam1")
	require.True(t, ok)
	assert.Same(t, first, got)
	select {
	case <-first.Done():
		t.Fatal("first processor should still be running")
	default:
	}
}

func TestRegistryEnforcesCameraLimit(t *testing.T) {
	r := NewRegistry(1, time.Second)
	defer r.StopAll()

	require.NoError(t, r.Add(registryProcessor(t, "cam1")))
	err := r.Add(registryProcessor(t, "cam2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera limit")
}

func TestRegistryRemove(t *testing.T) {
	r := newTestRegistry()
	defer r.StopAll()

	p := registryProcessor(t, "cam1")
	require.NoError(t, r.Add(p))

	require.NoError(t, r.Remove("cam1"))

	_, ok := r.Get("cam1")
	assert.False(t, ok)

	select {
	case <-p.Done():
	default:
		t.Fatal("removed processor should have stopped")
	}

	assert.Error(t, r.Remove("cam1"), "second remove reports not found")
}

func TestRegistryAllStats(t *testing.T) {
	r := newTestRegistry()
	defer r.StopAll()

	require.NoError(t, r.Add(registryProcessor(t, "cam1")))
	require.NoError(t, r.Add(registryProcessor(t, "cam2")))

	stats := r.AllStats()
	require.Len(t, stats, 2)

	ids := []string{stats[0].CameraID, stats[1].CameraID}
	assert.ElementsMatch(t, []string{"cam1", "cam2"}, ids)

	connected, total := r.Counts()
	assert.Equal(t, 0, connected)
	assert.Equal(t, 2, total)
}

func TestRegistryStopAllIsIdempotent(t *testing.T) {
	r := newTestRegistry()

	p1 := registryProcessor(t, "cam1")
	p2 := registryProcessor(t, "cam2")
	require.NoError(t, r.Add(p1))
	require.NoError(t, r.Add(p2))

	r.StopAll()
	r.StopAll()

	_, total := r.Counts()
	assert.Zero(t, total)

	for _, p := range []*Processor{p1, p2} {
		select {
		case <-p.Done():
		case <-time.After(time.Second):
			t.Fatal("processor did not stop")
		}
	}
}

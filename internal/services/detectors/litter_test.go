package detectors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"citysentry-worker-go/internal/models"
)

func TestLitterDetectorRelabelsProxyClasses(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	cap := &fakeCapability{script: [][]RawBox{{
		{Label: "bottle", Confidence: 0.6, BBox: [4]int{10, 10, 40, 60}},
		{Label: "Pizza", Confidence: 0.5, BBox: [4]int{80, 80, 120, 110}},
	}}}

	d := NewLitterDetector(cap, time.Second)
	events := d.Detect(frame, "cam1")
	require.Len(t, events, 2)

	for _, ev := range events {
		assert.Equal(t, models.LabelTrashProxy, ev.Label)
		assert.Equal(t, "cam1", ev.CameraID)
	}
	assert.Equal(t, "bottle", events[0].Meta["original_label"])
	assert.Equal(t, "pizza", events[1].Meta["original_label"])
}

func TestLitterDetectorPassesThroughOtherLabels(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	cap := &fakeCapability{script: [][]RawBox{{
		{Label: "backpack", Confidence: 0.7, BBox: [4]int{10, 10, 40, 60}},
	}}}

	d := NewLitterDetector(cap, time.Second)
	events := d.Detect(frame, "cam1")
	require.Len(t, events, 1)
	assert.Equal(t, "backpack", events[0].Label)
	assert.NotContains(t, events[0].Meta, "original_label")
}

func TestLitterDetectorConfidenceFloor(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	cap := &fakeCapability{script: [][]RawBox{{
		{Label: "cup", Confidence: 0.34, BBox: [4]int{10, 10, 40, 60}},
		{Label: "cup", Confidence: 0.35, BBox: [4]int{50, 10, 80, 60}},
	}}}

	d := NewLitterDetector(cap, time.Second)
	events := d.Detect(frame, "cam1")
	require.Len(t, events, 1)
	assert.Equal(t, [4]int{50, 10, 80, 60}, events[0].BBox)
}

func TestLitterDetectorInferenceErrorReturnsEmpty(t *testing.T) {
	frame := gocv.NewMat()
	defer frame.Close()

	cap := &fakeCapability{errs: []error{assert.AnError}}
	d := NewLitterDetector(cap, time.Second)
	assert.Empty(t, d.Detect(frame, "cam1"))
}

func TestIoU(t *testing.T) {
	t.Run("identical boxes", func(t *testing.T) {
		a := [4]int{0, 0, 100, 100}
		assert.InDelta(t, 1.0, IoU(a, a), 1e-9)
	})

	t.Run("disjoint boxes", func(t *testing.T) {
		assert.Zero(t, IoU([4]int{0, 0, 10, 10}, [4]int{20, 20, 30, 30}))
	})

	t.Run("half overlap", func(t *testing.T) {
		// Intersection 50x100, union 150x100.
		got := IoU([4]int{0, 0, 100, 100}, [4]int{50, 0, 150, 100})
		assert.InDelta(t, 1.0/3.0, got, 1e-9)
	})

	t.Run("touching edges do not overlap", func(t *testing.T) {
		assert.Zero(t, IoU([4]int{0, 0, 10, 10}, [4]int{10, 0, 20, 10}))
	})
}

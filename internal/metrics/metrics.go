package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"citysentry-worker-go/internal/models"
)

// StatsSource provides per-camera counter snapshots on demand.
type StatsSource interface {
	AllStats() []models.CameraStats
}

// Metrics exposes worker state to Prometheus. Gauges are computed lazily
// at scrape time from the registry's stats snapshots, so the pipeline
// never pays a metrics cost per frame.
type Metrics struct {
	registry *prometheus.Registry
}

func New(source StatsSource) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	sum := func(pick func(models.CameraStats) float64) func() float64 {
		return func() float64 {
			total := 0.0
			for _, s := range source.AllStats() {
				total += pick(s)
			}
			return total
		}
	}

	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "citysentry_cameras_total",
		Help: "Number of registered cameras.",
	}, func() float64 {
		return float64(len(source.AllStats()))
	}))

	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "citysentry_cameras_connected",
		Help: "Number of cameras currently streaming.",
	}, sum(func(s models.CameraStats) float64 {
		if s.Connected {
			return 1
		}
		return 0
	})))

	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "citysentry_frames_read_total",
		Help: "Frames read across all cameras.",
	}, sum(func(s models.CameraStats) float64 { return float64(s.FramesRead) })))

	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "citysentry_detections_total",
		Help: "Detections emitted across all cameras, including reused detection cycles.",
	}, sum(func(s models.CameraStats) float64 { return float64(s.Detections) })))

	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "citysentry_stream_errors_total",
		Help: "Source open and read failures across all cameras.",
	}, sum(func(s models.CameraStats) float64 { return float64(s.Errors) })))

	return &Metrics{registry: reg}
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"citysentry-worker-go/internal/config"
	"citysentry-worker-go/internal/models"
	"citysentry-worker-go/internal/services/alerts"
	"citysentry-worker-go/internal/services/detectors"
	"citysentry-worker-go/internal/services/inference"
	"citysentry-worker-go/internal/services/snapshot"
	"citysentry-worker-go/internal/services/storage"
	"citysentry-worker-go/internal/services/stream"
)

// ServiceContainer holds all services
type ServiceContainer struct {
	Config    *config.Config
	Inference *inference.Client
	Store     *storage.Store
	Snapshots *snapshot.Service
	Alerts    *alerts.Service
	Registry  *stream.Registry
}

// NewServiceContainer creates a new service container
func NewServiceContainer(cfg *config.Config) (*ServiceContainer, error) {
	store, err := storage.NewStore(cfg.EventDBPath)
	if err != nil {
		return nil, err
	}

	var snapshots *snapshot.Service
	if cfg.SnapshotsEnabled {
		snapshots, err = snapshot.NewService(cfg.SnapshotDir, cfg.SnapshotQuality)
		if err != nil {
			store.Close()
			return nil, err
		}
	}

	// Alerting is best effort: a missing NATS server degrades to
	// persistence-only operation instead of refusing to start.
	var alertSvc *alerts.Service
	if cfg.NatsEnabled {
		alertSvc, err = alerts.NewService(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("NATS not available, parking alerts disabled")
			alertSvc = nil
		}
	}

	return &ServiceContainer{
		Config:    cfg,
		Inference: inference.NewClient(cfg.AIGRPCURL, cfg.AITimeout, cfg.AIMaxBackoff),
		Store:     store,
		Snapshots: snapshots,
		Alerts:    alertSvc,
		Registry:  stream.NewRegistry(cfg.MaxCameras, cfg.RemoveWait),
	}, nil
}

// RegisterCamera builds a processor with the standard detector set and
// starts it. A camera without parking zones still runs the litter
// detector; its parking detector is a permanent no-op.
func (sc *ServiceContainer) RegisterCamera(req *models.CameraRequest) error {
	dets := []detectors.Detector{
		detectors.NewParkingDetector(sc.Inference, req.ParkingZones,
			sc.Config.ParkingDwell, sc.Config.DetectorTimeout),
		detectors.NewLitterDetector(sc.Inference, sc.Config.DetectorTimeout),
	}

	var snapshots stream.SnapshotSaver
	if sc.Snapshots != nil {
		snapshots = sc.Snapshots
	}
	var alertPublisher stream.AlertPublisher
	if sc.Alerts != nil {
		alertPublisher = sc.Alerts
	}

	p := stream.NewProcessor(sc.Config, req.CameraID, req.StreamURL, dets,
		sc.Store, snapshots, alertPublisher)
	return sc.Registry.Add(p)
}

// Shutdown gracefully shuts down all services
func (sc *ServiceContainer) Shutdown(ctx context.Context) error {
	if sc.Registry != nil {
		sc.Registry.StopAll()
	}

	if sc.Alerts != nil {
		sc.Alerts.Shutdown(ctx)
	}

	if sc.Inference != nil {
		sc.Inference.Shutdown(ctx)
	}

	if sc.Store != nil {
		return sc.Store.Close()
	}

	return nil
}

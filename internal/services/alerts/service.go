package alerts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"citysentry-worker-go/internal/config"
	"citysentry-worker-go/internal/models"
)

// Service publishes parking alerts over NATS for downstream consumers
// (dispatch dashboards, notification fan-out).
type Service struct {
	conn    *nats.Conn
	subject string
}

// ParkingAlert is the wire payload for an illegal-parking alert.
type ParkingAlert struct {
	EventID    string         `json:"event_id"`
	CameraID   string         `json:"camera_id"`
	Label      string         `json:"label"`
	Confidence float64        `json:"confidence"`
	BBox       [4]int         `json:"bbox"`
	Timestamp  time.Time      `json:"timestamp"`
	Meta       map[string]any `json:"meta,omitempty"`
	Snapshot   string         `json:"snapshot,omitempty"`
}

func NewService(cfg *config.Config) (*Service, error) {
	opts := []nats.Option{
		nats.Name("citysentry-worker"),
		nats.Timeout(cfg.NatsConnectTimeout),
		nats.ReconnectWait(cfg.NatsReconnectWait),
		nats.MaxReconnects(cfg.NatsMaxReconnects),
	}

	conn, err := nats.Connect(cfg.NatsURL, opts...)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", cfg.NatsURL).Msg("NATS connection established")

	return &Service{
		conn:    conn,
		subject: cfg.AlertsSubject,
	}, nil
}

// PublishParkingAlert sends one alert for a persisted parking event.
func (s *Service) PublishParkingAlert(det models.Detection, eventID, snapshotRef string) error {
	alert := ParkingAlert{
		EventID:    eventID,
		CameraID:   det.CameraID,
		Label:      det.Label,
		Confidence: det.Confidence,
		BBox:       det.BBox,
		Timestamp:  det.Timestamp,
		Meta:       det.Meta,
		Snapshot:   snapshotRef,
	}

	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}

	return s.conn.Publish(s.subject, payload)
}

func (s *Service) IsConnected() bool {
	return s.conn != nil && s.conn.IsConnected()
}

func (s *Service) Shutdown(ctx context.Context) error {
	if s.conn != nil {
		// Try graceful drain, fallback to immediate close
		if err := s.conn.Drain(); err != nil {
			log.Warn().Err(err).Msg("Failed to drain NATS connection gracefully, closing immediately")
			s.conn.Close()
		}
	}
	return nil
}

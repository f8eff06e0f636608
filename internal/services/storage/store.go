package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"citysentry-worker-go/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS detections (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	label      TEXT NOT NULL,
	confidence REAL NOT NULL,
	x1         INTEGER NOT NULL,
	y1         INTEGER NOT NULL,
	x2         INTEGER NOT NULL,
	y2         INTEGER NOT NULL,
	timestamp  TIMESTAMP NOT NULL,
	camera_id  TEXT NOT NULL,
	meta       TEXT,
	snapshot   TEXT
);
CREATE INDEX IF NOT EXISTS idx_detections_label ON detections(label);
CREATE INDEX IF NOT EXISTS idx_detections_camera ON detections(camera_id);

CREATE TABLE IF NOT EXISTS parking_events (
	event_id    TEXT PRIMARY KEY,
	camera_id   TEXT NOT NULL,
	label       TEXT NOT NULL,
	confidence  REAL NOT NULL,
	x1          INTEGER NOT NULL,
	y1          INTEGER NOT NULL,
	x2          INTEGER NOT NULL,
	y2          INTEGER NOT NULL,
	timestamp   TIMESTAMP NOT NULL,
	meta        TEXT,
	snapshot    TEXT,
	resolved    INTEGER NOT NULL DEFAULT 0,
	resolved_at TIMESTAMP,
	officer     TEXT,
	notes       TEXT
);
CREATE INDEX IF NOT EXISTS idx_parking_camera ON parking_events(camera_id);
CREATE INDEX IF NOT EXISTS idx_parking_resolved ON parking_events(resolved);
CREATE INDEX IF NOT EXISTS idx_parking_timestamp ON parking_events(timestamp);
`

// Store persists detections and parking events in SQLite. Writes come
// from every stream processor goroutine concurrently; database/sql
// serializes access to the underlying connection.
type Store struct {
	db *sql.DB
}

func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open event database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize event schema: %w", err)
	}

	log.Info().Str("path", path).Msg("Event store ready")
	return &Store{db: db}, nil
}

func marshalMeta(meta map[string]any) (string, error) {
	if len(meta) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// RecordDetection stores a generic (non-parking) detection.
func (s *Store) RecordDetection(det models.Detection, snapshotRef string) error {
	meta, err := marshalMeta(det.Meta)
	if err != nil {
		return fmt.Errorf("failed to encode detection meta: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO detections (label, confidence, x1, y1, x2, y2, timestamp, camera_id, meta, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		det.Label, det.Confidence,
		det.BBox[0], det.BBox[1], det.BBox[2], det.BBox[3],
		det.Timestamp.UTC(), det.CameraID, meta, snapshotRef,
	)
	return err
}

// RecordParkingEvent stores an illegal-parking event and returns its
// generated event id.
func (s *Store) RecordParkingEvent(det models.Detection, snapshotRef string) (string, error) {
	meta, err := marshalMeta(det.Meta)
	if err != nil {
		return "", fmt.Errorf("failed to encode event meta: %w", err)
	}

	eventID := uuid.NewString()
	_, err = s.db.Exec(`
		INSERT INTO parking_events (event_id, camera_id, label, confidence, x1, y1, x2, y2, timestamp, meta, snapshot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		eventID, det.CameraID, det.Label, det.Confidence,
		det.BBox[0], det.BBox[1], det.BBox[2], det.BBox[3],
		det.Timestamp.UTC(), meta, snapshotRef,
	)
	if err != nil {
		return "", err
	}
	return eventID, nil
}

// ResolveParkingEvent marks an unresolved event as handled. Returns
// false when the event does not exist or was already resolved.
func (s *Store) ResolveParkingEvent(eventID, officer, notes string) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE parking_events
		SET resolved = 1, resolved_at = ?, officer = ?, notes = ?
		WHERE event_id = ? AND resolved = 0`,
		time.Now().UTC(), officer, notes, eventID,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ParkingEvents returns events newest first, optionally filtered by
// camera and resolution state.
func (s *Store) ParkingEvents(cameraID string, resolved *bool, limit int) ([]models.ParkingEvent, error) {
	query := `
		SELECT event_id, camera_id, label, confidence, x1, y1, x2, y2,
		       timestamp, meta, snapshot, resolved, resolved_at, officer, notes
		FROM parking_events WHERE 1=1`
	var args []any

	if cameraID != "" {
		query += " AND camera_id = ?"
		args = append(args, cameraID)
	}
	if resolved != nil {
		query += " AND resolved = ?"
		args = append(args, *resolved)
	}
	query += " ORDER BY timestamp DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.ParkingEvent
	for rows.Next() {
		var ev models.ParkingEvent
		var meta, snapshot, officer, notes sql.NullString
		var resolvedAt sql.NullTime

		err := rows.Scan(
			&ev.EventID, &ev.CameraID, &ev.Label, &ev.Confidence,
			&ev.BBox[0], &ev.BBox[1], &ev.BBox[2], &ev.BBox[3],
			&ev.Timestamp, &meta, &snapshot, &ev.Resolved, &resolvedAt, &officer, &notes,
		)
		if err != nil {
			return nil, err
		}

		if meta.Valid && meta.String != "" {
			if err := json.Unmarshal([]byte(meta.String), &ev.Meta); err != nil {
				log.Warn().Err(err).Str("event_id", ev.EventID).Msg("Failed to decode event meta")
			}
		}
		ev.Snapshot = snapshot.String
		ev.Officer = officer.String
		ev.Notes = notes.String
		if resolvedAt.Valid {
			t := resolvedAt.Time
			ev.ResolvedAt = &t
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CountsByLabel aggregates persisted detections per label.
func (s *Store) CountsByLabel() (models.DetectionCounts, error) {
	counts := models.DetectionCounts{ByLabel: make(map[string]int64)}

	rows, err := s.db.Query(`SELECT label, COUNT(*) FROM detections GROUP BY label`)
	if err != nil {
		return counts, err
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var n int64
		if err := rows.Scan(&label, &n); err != nil {
			return counts, err
		}
		counts.ByLabel[label] = n
		counts.Total += n
	}
	return counts, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

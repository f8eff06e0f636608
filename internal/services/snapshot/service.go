package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"
)

// Service writes annotated evidence JPEGs for persisted events. One
// file per event, named so the camera, label and capture instant are
// recoverable from the filename alone.
type Service struct {
	dir     string
	quality int
}

func NewService(dir string, quality int) (*Service, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	log.Info().Str("dir", dir).Msg("Snapshot store ready")
	return &Service{dir: dir, quality: quality}, nil
}

// Save writes the frame with the event box drawn on it and returns the
// file path for use as a snapshot reference.
func (s *Service) Save(frame gocv.Mat, label, cameraID string, bbox [4]int) (string, error) {
	annotated := frame.Clone()
	defer annotated.Close()

	rect := image.Rect(bbox[0], bbox[1], bbox[2], bbox[3])
	red := color.RGBA{R: 255}
	gocv.Rectangle(&annotated, rect, red, 2)
	gocv.PutText(&annotated, label, image.Pt(bbox[0], bbox[1]-8),
		gocv.FontHersheySimplex, 0.6, red, 2)

	name := fmt.Sprintf("%s_%s_%s_%s.jpg",
		cameraID,
		strings.ReplaceAll(label, " ", "-"),
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:6],
	)
	path := filepath.Join(s.dir, name)

	ok := gocv.IMWriteWithParams(path, annotated, []int{gocv.IMWriteJpegQuality, s.quality})
	if !ok {
		return "", fmt.Errorf("failed to write snapshot %s", path)
	}
	return path, nil
}

package inference

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"gocv.io/x/gocv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"citysentry-worker-go/internal/services/detectors"
	pb "citysentry-worker-go/proto"
)

// Client talks to the external detection model over gRPC. Failed calls
// back off exponentially (capped) so a dead model server does not get
// hammered once per detection cycle by every camera.
type Client struct {
	mu         sync.Mutex
	conn       *grpc.ClientConn
	client     pb.DetectionServiceClient
	grpcURL    string
	timeout    time.Duration
	maxBackoff time.Duration

	isHealthy        bool
	consecutiveFails int
	lastFailTime     time.Time

	frameID int64
}

func NewClient(grpcURL string, timeout, maxBackoff time.Duration) *Client {
	log.Info().Str("url", grpcURL).Msg("Initializing AI detection client")

	c := &Client{
		grpcURL:    grpcURL,
		timeout:    timeout,
		maxBackoff: maxBackoff,
	}

	// Try to connect, but don't fail if it's not available
	if err := c.connect(); err != nil {
		log.Warn().Err(err).Msg("AI detection service not available, will retry later")
	}

	return c
}

func (c *Client) connect() error {
	if c.conn != nil {
		c.conn.Close()
	}

	conn, err := grpc.NewClient(c.grpcURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect to detection service: %w", err)
	}

	client := pb.NewDetectionServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := client.HealthCheck(ctx, &pb.Empty{}); err != nil {
		conn.Close()
		return fmt.Errorf("detection service health check failed: %w", err)
	}

	c.client = client
	c.conn = conn
	c.isHealthy = true
	c.consecutiveFails = 0

	log.Info().Msg("Successfully connected to AI detection service")
	return nil
}

// backoffDelay doubles per consecutive failure, capped at maxBackoff.
func (c *Client) backoffDelay() time.Duration {
	delay := time.Second << uint(c.consecutiveFails-1)
	if delay > c.maxBackoff || delay <= 0 {
		delay = c.maxBackoff
	}
	return delay
}

func (c *Client) ensureConnection() error {
	if c.isHealthy && c.conn != nil {
		return nil
	}

	if c.consecutiveFails > 0 {
		if wait := c.backoffDelay(); time.Since(c.lastFailTime) < wait {
			return fmt.Errorf("detection service in backoff for %s", wait)
		}
	}

	return c.connect()
}

func (c *Client) recordFailure() {
	c.isHealthy = false
	c.consecutiveFails++
	c.lastFailTime = time.Now()
}

// Infer encodes the frame as JPEG, submits it to the detection service
// and returns the raw labeled boxes. Box coordinates are normalized so
// x1<x2 and y1<y2 regardless of what the model returns.
func (c *Client) Infer(ctx context.Context, frame gocv.Mat, cameraID string) ([]detectors.RawBox, error) {
	buf, err := gocv.IMEncode(gocv.JPEGFileExt, frame)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame: %w", err)
	}
	encoded := make([]byte, len(buf.GetBytes()))
	copy(encoded, buf.GetBytes())
	buf.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureConnection(); err != nil {
		return nil, fmt.Errorf("detection service unavailable: %w", err)
	}

	c.frameID++
	req := &pb.FrameRequest{
		CameraId: cameraID,
		Frame:    encoded,
		FrameId:  c.frameID,
		Width:    int32(frame.Cols()),
		Height:   int32(frame.Rows()),
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.InferDetection(callCtx, req)
	if err != nil {
		c.recordFailure()
		return nil, err
	}
	c.consecutiveFails = 0

	boxes := make([]detectors.RawBox, 0, len(resp.GetBoxes()))
	for _, b := range resp.GetBoxes() {
		x1, x2 := int(b.GetX1()), int(b.GetX2())
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		y1, y2 := int(b.GetY1()), int(b.GetY2())
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		boxes = append(boxes, detectors.RawBox{
			Label:      b.GetLabel(),
			Confidence: float64(b.GetConfidence()),
			BBox:       [4]int{x1, y1, x2, y2},
		})
	}

	log.Debug().
		Str("camera_id", cameraID).
		Int("boxes", len(boxes)).
		Str("model", resp.GetModelName()).
		Float32("inference_ms", resp.GetInferenceMs()).
		Msg("Inference completed")

	return boxes, nil
}

func (c *Client) HealthCheck(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureConnection(); err != nil {
		return err
	}

	if _, err := c.client.HealthCheck(ctx, &pb.Empty{}); err != nil {
		c.recordFailure()
		return err
	}
	return nil
}

func (c *Client) IsHealthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isHealthy
}

func (c *Client) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		log.Info().Msg("Shutting down detection service connection")
		return c.conn.Close()
	}
	return nil
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// Application
	Version     string
	Environment string
	WorkerID    string
	Port        int
	LogLevel    string

	// Logdy (lightweight web log viewer)
	LogdyEnabled bool
	LogdyHost    string
	LogdyPort    int

	// AI inference service
	AIGRPCURL       string
	AITimeout       time.Duration
	AIMaxBackoff    time.Duration
	DetectorTimeout time.Duration

	// NATS (for parking alerts)
	// Default: nats://localhost:4222 (works with Docker Compose setup)
	// Docker: Use nats://nats:4222 if running worker in Docker
	NatsEnabled        bool
	NatsURL            string
	NatsConnectTimeout time.Duration
	NatsReconnectWait  time.Duration
	NatsMaxReconnects  int
	AlertsSubject      string

	// Streaming Configuration
	MaxCameras     int
	ReconnectDelay time.Duration
	RemoveWait     time.Duration

	// Frame Processing
	FrameWidth        int
	FrameHeight       int
	DetectionInterval int // Run inference every Nth frame, reuse results in between
	JPEGQuality       int

	// Detection policy
	ParkingDwell  time.Duration
	DedupCooldown time.Duration

	// Event storage (SQLite)
	EventDBPath string

	// Snapshots
	SnapshotsEnabled bool
	SnapshotDir      string
	SnapshotQuality  int

	// Swagger Configuration
	SwaggerHost string
	SwaggerPort int

	// Graceful Shutdown
	ShutdownTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file found or error loading .env file, using environment variables and defaults")
	} else {
		log.Info().Msg("Loaded configuration from .env file")
	}

	return &Config{
		// Application
		Version:     getEnv("VERSION", "1.0.0"),
		Environment: getEnv("ENVIRONMENT", "development"),
		WorkerID:    getEnv("WORKER_ID", "worker-1"),
		Port:        getEnvInt("PORT", 8000),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// Logdy (lightweight web log viewer)
		LogdyEnabled: getEnvBool("LOGDY_ENABLED", true),
		LogdyHost:    getEnv("LOGDY_HOST", "localhost"),
		LogdyPort:    getEnvInt("LOGDY_PORT", 8080),

		// AI inference service
		AIGRPCURL:       getEnv("AI_GRPC_URL", "localhost:50052"),
		AITimeout:       getEnvDuration("AI_TIMEOUT", 5*time.Second),
		AIMaxBackoff:    getEnvDuration("AI_MAX_BACKOFF", 30*time.Second),
		DetectorTimeout: getEnvDuration("DETECTOR_TIMEOUT", 10*time.Second),

		// NATS (configured for Docker Compose setup)
		NatsEnabled:        getEnvBool("NATS_ENABLED", true),
		NatsURL:            getNatsURL(),
		NatsConnectTimeout: getEnvDuration("NATS_CONNECT_TIMEOUT", 10*time.Second),
		NatsReconnectWait:  getEnvDuration("NATS_RECONNECT_WAIT", 2*time.Second),
		NatsMaxReconnects:  getEnvInt("NATS_MAX_RECONNECTS", -1), // -1 = unlimited
		AlertsSubject:      getEnv("ALERTS_SUBJECT", "citysentry.alerts.parking"),

		// Streaming Configuration
		MaxCameras:     getEnvInt("MAX_CAMERAS", 10),
		ReconnectDelay: getEnvDuration("RECONNECT_DELAY", 3*time.Second),
		RemoveWait:     getEnvDuration("REMOVE_WAIT", 10*time.Second),

		// Frame Processing
		FrameWidth:        getEnvInt("FRAME_WIDTH", 640),
		FrameHeight:       getEnvInt("FRAME_HEIGHT", 480),
		DetectionInterval: getEnvInt("DETECTION_INTERVAL", 15),
		JPEGQuality:       getEnvInt("JPEG_QUALITY", 75),

		// Detection policy
		ParkingDwell:  getEnvDuration("PARKING_DWELL", 10*time.Second),
		DedupCooldown: getEnvDuration("DEDUP_COOLDOWN", 5*time.Second),

		// Event storage
		EventDBPath: getEnv("EVENT_DB_PATH", "citysentry.db"),

		// Snapshots
		SnapshotsEnabled: getEnvBool("SNAPSHOTS_ENABLED", true),
		SnapshotDir:      getEnv("SNAPSHOT_DIR", "snapshots"),
		SnapshotQuality:  getEnvInt("SNAPSHOT_QUALITY", 90),

		// Swagger Configuration
		SwaggerHost: getEnv("SWAGGER_HOST", "localhost"),
		SwaggerPort: getEnvInt("SWAGGER_PORT", 8000),

		// Graceful Shutdown
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// Helper functions for Docker environment detection
func isRunningInDocker() bool {
	if os.Getenv("DOCKER_CONTAINER") == "true" {
		return true
	}

	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	return false
}

// getNatsURL returns the appropriate NATS URL based on environment
func getNatsURL() string {
	if envURL := os.Getenv("NATS_URL"); envURL != "" {
		return envURL
	}

	// If running in Docker, use service name; otherwise use localhost
	if isRunningInDocker() {
		return "nats://nats:4222"
	}

	return "nats://localhost:4222"
}

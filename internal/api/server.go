package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"citysentry-worker-go/internal/api/handlers"
	"citysentry-worker-go/internal/config"
	"citysentry-worker-go/internal/metrics"
	"citysentry-worker-go/internal/services"
)

type Server struct {
	config *config.Config
	router *gin.Engine
	server *http.Server

	healthHandler  *handlers.HealthHandler
	cameraHandler  *handlers.CameraHandler
	parkingHandler *handlers.ParkingHandler
	systemHandler  *handlers.SystemHandler
	metrics        *metrics.Metrics
}

func NewServer(cfg *config.Config, container *services.ServiceContainer) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		config:         cfg,
		router:         gin.New(),
		healthHandler:  handlers.NewHealthHandler(container.Registry, cfg.WorkerID, cfg.Version),
		cameraHandler:  handlers.NewCameraHandler(container.Registry, container),
		parkingHandler: handlers.NewParkingHandler(container.Store),
		systemHandler:  handlers.NewSystemHandler(container.Registry, container.Store),
		metrics:        metrics.New(container.Registry),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: s.router,
	}

	return s
}

func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("Starting CitySentry Worker API")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Stopping CitySentry Worker API")
	return s.server.Shutdown(ctx)
}

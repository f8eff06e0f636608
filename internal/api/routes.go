package api

import "github.com/gin-gonic/gin"

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.WorkerInfo)
	s.router.GET("/health", s.healthHandler.HealthCheck)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	cameras := s.router.Group("/cameras")
	{
		cameras.GET("", s.cameraHandler.ListCameras)
		cameras.POST("", s.cameraHandler.AddCamera)
		cameras.DELETE("/:camera_id", s.cameraHandler.RemoveCamera)
		cameras.GET("/:camera_id/stats", s.cameraHandler.GetCameraStats)
		cameras.GET("/:camera_id/frame", s.cameraHandler.GetLatestFrame)
		cameras.GET("/:camera_id/stream", s.cameraHandler.StreamMJPEG)
	}

	parking := s.router.Group("/parking")
	{
		parking.GET("/events", s.parkingHandler.ListEvents)
		parking.POST("/events/:event_id/resolve", s.parkingHandler.ResolveEvent)
	}

	system := s.router.Group("/system")
	{
		system.GET("/stats", s.systemHandler.GetStats)
		system.GET("/debug", s.systemHandler.GetDebugInfo)
	}
}

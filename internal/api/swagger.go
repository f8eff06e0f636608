package api

import (
	"net/http"

	_ "citysentry-worker-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "CitySentry Worker API",
			"version":     s.config.Version,
			"description": "Video processing worker for illegal parking and litter detection on live camera streams",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"health":  "/health",
				"metrics": "/metrics",
				"cameras": "/cameras",
				"parking": "/parking",
				"system":  "/system",
			},
			"worker_id": s.config.WorkerID,
			"port":      s.config.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}

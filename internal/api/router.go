package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuswatch/issues-backend-go/internal/config"
	"github.com/campuswatch/issues-backend-go/internal/handler"
	"github.com/campuswatch/issues-backend-go/internal/middleware"
)

// SetupRouter wires middleware and routes
func SetupRouter(cfg *config.Config, heatmapHandler *handler.HeatmapHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Issues Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.OrgAuth(cfg.JWTSecret))
	{
		heatmapRoutes := api.Group("/heatmap")
		{
			heatmapRoutes.GET("", heatmapHandler.GetHeatmap)
			heatmapRoutes.GET("/stats", heatmapHandler.GetStatistics)
		}
	}

	return r
}

package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/GroSafe/ReportV1/api/health"
	"github.com/GroSafe/ReportV1/api/reports"
	"github.com/GroSafe/ReportV1/api/types"
	"github.com/GroSafe/ReportV1/api/version"
	_ "github.com/GroSafe/ReportV1/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	// Submissions carry audio uploads, so the size cap is the audio
	// limit plus headroom for the other form fields.
	maxAudioBytes := viper.GetInt64("reporting.max_audio_bytes")
	if maxAudioBytes <= 0 {
		maxAudioBytes = 10 << 20
	}

	// Register report routes with rate limiting (5 req/s, burst of 10)
	reportGroup := v1.Group("/reports")
	reportGroup.Use(RequestSizeLimitWithSize(maxAudioBytes + 1<<20))
	reportGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 5, 10))
	reports.RegisterRoutes(reportGroup, deps)

	return nil
}

// NotFoundHandler returns a JSON 404 for unknown routes
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}

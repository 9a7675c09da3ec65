package reports

import (
	"github.com/GroSafe/ReportV1/api/types"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all report-related routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Submit(deps))
	router.GET("/types", GetTypes())
	router.GET("/languages", GetLanguages(deps))
	router.GET("/log/download", DownloadLog(deps))
	router.GET("/history", List(deps))
	router.GET("/history/:id", GetByID(deps))
}

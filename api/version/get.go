package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Version information
// @Description  Returns service name, version and status
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version information"
// @Router       /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "GroSafe Incident Report API",
			"version":     "1.0.0",
			"description": "API for submitting, translating and logging incident reports",
			"status":      "running",
		})
	}
}

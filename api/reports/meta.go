package reports

import (
	"net/http"

	"github.com/GroSafe/ReportV1/api/types"
	reportsvc "github.com/GroSafe/ReportV1/internal/services/reports"
	"github.com/gin-gonic/gin"
)

// GetTypes returns the incident categories offered by the form
// @Summary      List incident categories
// @Tags         reports
// @Produce      json
// @Success      200 {object} types.ReportTypesResponse "Incident categories"
// @Router       /api/v1/reports/types [get]
func GetTypes() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.ReportTypesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			ReportTypes:  reportsvc.ReportTypeOptions,
		})
	}
}

// GetLanguages returns the supported translation target languages
// @Summary      List supported target languages
// @Tags         reports
// @Produce      json
// @Success      200 {object} types.LanguagesResponse "Supported language codes"
// @Router       /api/v1/reports/languages [get]
func GetLanguages(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.LanguagesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Languages:    deps.SupportedLanguages,
		})
	}
}

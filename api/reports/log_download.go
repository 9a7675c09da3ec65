package reports

import (
	"net/http"
	"os"

	"github.com/GroSafe/ReportV1/api/types"
	"github.com/gin-gonic/gin"
)

// DownloadLog streams the full report log as a CSV attachment
// @Summary      Download the report log
// @Description  Returns the complete append-only CSV report log. Only available in log mode.
// @Tags         reports
// @Produce      text/csv
// @Success      200 {file} file "The report log"
// @Failure      404 {object} types.ErrorResponse "No report log exists yet"
// @Router       /api/v1/reports/log/download [get]
func DownloadLog(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ReportLogPath == "" {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Report log not configured"})
			return
		}

		if _, err := os.Stat(deps.ReportLogPath); err != nil {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "No reports have been logged yet"})
			return
		}

		c.FileAttachment(deps.ReportLogPath, "reports.csv")
	}
}

package reports

import (
	"log"
	"net/http"
	"strconv"

	"github.com/GroSafe/ReportV1/api/types"
	"github.com/gin-gonic/gin"
)

// List returns stored reports, newest first
// @Summary      List stored reports
// @Description  Returns the report history, newest first. Only available in log mode.
// @Tags         reports
// @Produce      json
// @Param        limit  query int false "Maximum results to return (default 20, max 100)"
// @Param        offset query int false "Results to skip"
// @Success      200 {object} types.ReportListResponse "Stored reports"
// @Failure      503 {object} types.ErrorResponse "Report history not available"
// @Router       /api/v1/reports/history [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ReportStore == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "Report history not available"})
			return
		}

		limit := parseQueryInt(c, "limit", 20)
		if limit <= 0 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}
		offset := parseQueryInt(c, "offset", 0)
		if offset < 0 {
			offset = 0
		}

		reports, total, err := deps.ReportStore.List(c.Request.Context(), limit, offset)
		if err != nil {
			log.Printf("[ERROR] Failed to list reports (limit %d, offset %d): %v", limit, offset, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to retrieve reports"})
			return
		}

		c.JSON(http.StatusOK, types.ReportListResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Reports:      reports,
			Count:        len(reports),
			Total:        total,
			Offset:       offset,
		})
	}
}

// GetByID returns a single stored report
// @Summary      Get a stored report
// @Description  Returns one report from the history by its ID
// @Tags         reports
// @Produce      json
// @Param        id path int true "Report ID" minimum(1)
// @Success      200 {object} types.SingleReportResponse "Stored report"
// @Failure      400 {object} types.ErrorResponse "Invalid report ID"
// @Failure      404 {object} types.ErrorResponse "Report not found"
// @Failure      503 {object} types.ErrorResponse "Report history not available"
// @Router       /api/v1/reports/history/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ReportStore == nil {
			c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{Error: "Report history not available"})
			return
		}

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil || id == 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid report ID"})
			return
		}

		report, err := deps.ReportStore.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			log.Printf("[ERROR] Failed to fetch report %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to retrieve report"})
			return
		}
		if report == nil {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Report not found"})
			return
		}

		c.JSON(http.StatusOK, types.SingleReportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Report:       report,
		})
	}
}

func parseQueryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

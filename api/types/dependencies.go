package types

import (
	"github.com/GroSafe/ReportV1/internal/database"
	"github.com/GroSafe/ReportV1/internal/services/reports"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                 *database.DB
	ReportService      reports.ReportService
	ReportStore        reports.Repository
	ReportMode         reports.Mode
	ReportLogPath      string
	SupportedLanguages []string
}

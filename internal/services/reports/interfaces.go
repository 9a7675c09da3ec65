package reports

import (
	"context"

	"github.com/GroSafe/ReportV1/internal/models"
)

// ReportService runs the submission pipeline: optional transcription,
// translation, then mode-dependent synthesis or logging.
type ReportService interface {
	// Process runs one submission through the pipeline. Any adapter
	// failure aborts the pipeline at that step; no partial side effects
	// are left behind.
	Process(ctx context.Context, submission *Submission) (*Outcome, error)

	// Mode returns the configured pipeline mode.
	Mode() Mode
}

// Repository persists processed reports to the history store
type Repository interface {
	// Create stores a new report
	Create(ctx context.Context, report *models.Report) error

	// List retrieves stored reports, newest first
	List(ctx context.Context, limit, offset int) ([]models.Report, int64, error)

	// GetByID retrieves a single report
	GetByID(ctx context.Context, id uint) (*models.Report, error)
}

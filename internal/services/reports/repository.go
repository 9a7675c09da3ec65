package reports

import (
	"context"
	"errors"

	"github.com/GroSafe/ReportV1/internal/models"
	"gorm.io/gorm"
)

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new report repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create stores a new report
func (r *repository) Create(ctx context.Context, report *models.Report) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	result := r.db.WithContext(ctx).Create(report)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// List retrieves stored reports, newest first
func (r *repository) List(ctx context.Context, limit, offset int) ([]models.Report, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Report{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []models.Report
	result := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return reports, total, nil
}

// GetByID retrieves a single report
func (r *repository) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	var report models.Report

	result := r.db.WithContext(ctx).First(&report, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return &report, nil
}

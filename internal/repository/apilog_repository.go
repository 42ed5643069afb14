//go:generate mockery --name APILogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"

	"gorm.io/gorm"
)

// APILogRepository persists and aggregates external call audit records.
type APILogRepository interface {
	Create(ctx context.Context, db *gorm.DB, entry *model.APILog) error
	FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.APILog, error)
	CountTotals(ctx context.Context, db *gorm.DB) (total, successful, failed int64, err error)
	StatsByAPIName(ctx context.Context, db *gorm.DB) ([]model.APINameStat, error)
}

type gormAPILogRepository struct{}

func NewGormAPILogRepository() APILogRepository {
	return &gormAPILogRepository{}
}

func (r *gormAPILogRepository) Create(ctx context.Context, db *gorm.DB, entry *model.APILog) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		logger.Error("Error writing API audit record",
			"error", result.Error,
			"api_name", entry.APIName,
		)
		return fmt.Errorf("gormAPILogRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAPILogRepository) FindRecent(ctx context.Context, db *gorm.DB, limit int) ([]*model.APILog, error) {
	logger := middleware.GetLogger(ctx)
	var logs []*model.APILog
	result := db.WithContext(ctx).Order("timestamp DESC").Limit(limit).Find(&logs)
	if result.Error != nil {
		logger.Error("Error reading API audit records", "error", result.Error)
		return nil, fmt.Errorf("gormAPILogRepository.FindRecent: %w", result.Error)
	}
	return logs, nil
}

func (r *gormAPILogRepository) CountTotals(ctx context.Context, db *gorm.DB) (int64, int64, int64, error) {
	logger := middleware.GetLogger(ctx)
	var total, successful int64
	if result := db.WithContext(ctx).Model(&model.APILog{}).Count(&total); result.Error != nil {
		logger.Error("Error counting API audit records", "error", result.Error)
		return 0, 0, 0, fmt.Errorf("gormAPILogRepository.CountTotals: %w", result.Error)
	}
	if result := db.WithContext(ctx).Model(&model.APILog{}).Where("success = ?", true).Count(&successful); result.Error != nil {
		logger.Error("Error counting successful API audit records", "error", result.Error)
		return 0, 0, 0, fmt.Errorf("gormAPILogRepository.CountTotals: %w", result.Error)
	}
	return total, successful, total - successful, nil
}

func (r *gormAPILogRepository) StatsByAPIName(ctx context.Context, db *gorm.DB) ([]model.APINameStat, error) {
	logger := middleware.GetLogger(ctx)
	var stats []model.APINameStat
	result := db.WithContext(ctx).
		Model(&model.APILog{}).
		Select("api_name, COUNT(*) AS count, SUM(CASE WHEN success THEN 1 ELSE 0 END) AS successful, SUM(CASE WHEN success THEN 0 ELSE 1 END) AS failed").
		Group("api_name").
		Order("count DESC").
		Scan(&stats)
	if result.Error != nil {
		logger.Error("Error aggregating API audit records", "error", result.Error)
		return nil, fmt.Errorf("gormAPILogRepository.StatsByAPIName: %w", result.Error)
	}
	return stats, nil
}

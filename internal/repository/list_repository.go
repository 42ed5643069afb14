//go:generate mockery --name ListRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRepository provides access to vocabulary lists.
type ListRepository interface {
	Create(ctx context.Context, tx *gorm.DB, list *model.VocabularyList) error
	FindByID(ctx context.Context, db *gorm.DB, listID uuid.UUID) (*model.VocabularyList, error)
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.VocabularyList, error)
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.VocabularyList, error)
	Update(ctx context.Context, tx *gorm.DB, listID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, listID uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	CheckNameExists(ctx context.Context, db *gorm.DB, userID uuid.UUID, name string, excludeListID *uuid.UUID) (bool, error)
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormListRepository struct{}

func NewGormListRepository() ListRepository {
	return &gormListRepository{}
}

func (r *gormListRepository) Create(ctx context.Context, tx *gorm.DB, list *model.VocabularyList) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(list)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error creating list in DB",
			"error", result.Error,
			"user_id", list.UserID.String(),
			"name", list.Name,
		)
		return fmt.Errorf("gormListRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormListRepository) FindByID(ctx context.Context, db *gorm.DB, listID uuid.UUID) (*model.VocabularyList, error) {
	logger := middleware.GetLogger(ctx)
	var list model.VocabularyList
	result := db.WithContext(ctx).Where("list_id = ?", listID).First(&list)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding list by ID in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return nil, fmt.Errorf("gormListRepository.FindByID: %w", result.Error)
	}
	return &list, nil
}

func (r *gormListRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.VocabularyList, error) {
	logger := middleware.GetLogger(ctx)
	var lists []*model.VocabularyList
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&lists)
	if result.Error != nil {
		logger.Error("Error finding lists by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormListRepository.FindByUser: %w", result.Error)
	}
	return lists, nil
}

func (r *gormListRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.VocabularyList, error) {
	logger := middleware.GetLogger(ctx)
	var lists []*model.VocabularyList
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&lists)
	if result.Error != nil {
		logger.Error("Error finding recent lists in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormListRepository.FindRecentByUser: %w", result.Error)
	}
	return lists, nil
}

func (r *gormListRepository) Update(ctx context.Context, tx *gorm.DB, listID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.VocabularyList{}).Where("list_id = ?", listID).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return model.ErrConflict
		}
		logger.Error("Error updating list in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return fmt.Errorf("gormListRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormListRepository) Delete(ctx context.Context, tx *gorm.DB, listID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("list_id = ?", listID).Delete(&model.VocabularyList{})
	if result.Error != nil {
		logger.Error("Error deleting list in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return fmt.Errorf("gormListRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormListRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.VocabularyList{})
	if result.Error != nil {
		logger.Error("Error deleting lists by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormListRepository.DeleteByUser: %w", result.Error)
	}
	return nil
}

func (r *gormListRepository) CheckNameExists(ctx context.Context, db *gorm.DB, userID uuid.UUID, name string, excludeListID *uuid.UUID) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	query := db.WithContext(ctx).Model(&model.VocabularyList{}).Where("user_id = ? AND name = ?", userID, name)
	if excludeListID != nil {
		query = query.Where("list_id != ?", *excludeListID)
	}
	result := query.Count(&count)
	if result.Error != nil {
		logger.Error("Error checking list name existence in DB",
			"error", result.Error,
			"user_id", userID.String(),
			"name", name,
		)
		return false, fmt.Errorf("gormListRepository.CheckNameExists: %w", result.Error)
	}
	return count > 0, nil
}

func (r *gormListRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyList{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting lists by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormListRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

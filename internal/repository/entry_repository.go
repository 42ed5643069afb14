//go:generate mockery --name EntryRepository --output ./mocks --outpkg mocks --case=underscore
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

// EntryRepository provides access to vocabulary entries.
type EntryRepository interface {
	CreateBatch(ctx context.Context, tx *gorm.DB, entries []*model.VocabularyEntry) error
	FindByID(ctx context.Context, db *gorm.DB, entryID uuid.UUID) (*model.VocabularyEntry, error)
	FindByList(ctx context.Context, db *gorm.DB, listID uuid.UUID) ([]*model.VocabularyEntry, error)
	FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.VocabularyEntry, error)
	Update(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) error
	DeleteByList(ctx context.Context, tx *gorm.DB, listID uuid.UUID) error
	DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error)
}

type gormEntryRepository struct{}

func NewGormEntryRepository() EntryRepository {
	return &gormEntryRepository{}
}

func (r *gormEntryRepository) CreateBatch(ctx context.Context, tx *gorm.DB, entries []*model.VocabularyEntry) error {
	logger := middleware.GetLogger(ctx)
	if len(entries) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Create(entries)
	if result.Error != nil {
		logger.Error("Error creating entries in DB",
			"error", result.Error,
			"count", len(entries),
		)
		return fmt.Errorf("gormEntryRepository.CreateBatch: %w", result.Error)
	}
	return nil
}

func (r *gormEntryRepository) FindByID(ctx context.Context, db *gorm.DB, entryID uuid.UUID) (*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.VocabularyEntry
	result := db.WithContext(ctx).Where("entry_id = ?", entryID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding entry by ID in DB",
			"error", result.Error,
			"entry_id", entryID.String(),
		)
		return nil, fmt.Errorf("gormEntryRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormEntryRepository) FindByList(ctx context.Context, db *gorm.DB, listID uuid.UUID) ([]*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.VocabularyEntry
	result := db.WithContext(ctx).Where("list_id = ?", listID).Order("added_at ASC").Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding entries by list in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return nil, fmt.Errorf("gormEntryRepository.FindByList: %w", result.Error)
	}
	return entries, nil
}

func (r *gormEntryRepository) FindRecentByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]*model.VocabularyEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entries []*model.VocabularyEntry
	result := db.WithContext(ctx).Where("user_id = ?", userID).Order("added_at DESC").Limit(limit).Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding recent entries in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormEntryRepository.FindRecentByUser: %w", result.Error)
	}
	return entries, nil
}

func (r *gormEntryRepository) Update(ctx context.Context, tx *gorm.DB, entryID uuid.UUID, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.VocabularyEntry{}).Where("entry_id = ?", entryID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating entry in DB",
			"error", result.Error,
			"entry_id", entryID.String(),
		)
		return fmt.Errorf("gormEntryRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormEntryRepository) Delete(ctx context.Context, tx *gorm.DB, entryID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("entry_id = ?", entryID).Delete(&model.VocabularyEntry{})
	if result.Error != nil {
		logger.Error("Error deleting entry in DB",
			"error", result.Error,
			"entry_id", entryID.String(),
		)
		return fmt.Errorf("gormEntryRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormEntryRepository) DeleteByList(ctx context.Context, tx *gorm.DB, listID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("list_id = ?", listID).Delete(&model.VocabularyEntry{})
	if result.Error != nil {
		logger.Error("Error deleting entries by list in DB",
			"error", result.Error,
			"list_id", listID.String(),
		)
		return fmt.Errorf("gormEntryRepository.DeleteByList: %w", result.Error)
	}
	return nil
}

func (r *gormEntryRepository) DeleteByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.VocabularyEntry{})
	if result.Error != nil {
		logger.Error("Error deleting entries by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return fmt.Errorf("gormEntryRepository.DeleteByUser: %w", result.Error)
	}
	return nil
}

func (r *gormEntryRepository) CountByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.VocabularyEntry{}).Where("user_id = ?", userID).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting entries by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormEntryRepository.CountByUser: %w", result.Error)
	}
	return count, nil
}

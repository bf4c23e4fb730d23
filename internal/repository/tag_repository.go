//go:generate mockery --name TagRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"

	"gorm.io/gorm"
)

type TagRepository interface {
	Create(ctx context.Context, db *gorm.DB, tag *model.Tag) error
	FindByID(ctx context.Context, db *gorm.DB, tagID uint) (*model.Tag, error)
	FindByIDs(ctx context.Context, db *gorm.DB, tagIDs []uint) ([]model.Tag, error)
	List(ctx context.Context, db *gorm.DB, page model.Page) ([]model.Tag, error)
	Update(ctx context.Context, db *gorm.DB, tag *model.Tag) error
	Delete(ctx context.Context, db *gorm.DB, tagID uint) error
}

type gormTagRepository struct{}

func NewGormTagRepository() TagRepository {
	return &gormTagRepository{}
}

func (r *gormTagRepository) Create(ctx context.Context, db *gorm.DB, tag *model.Tag) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Omit("JournalEntries", "PrayerRequests").Create(tag)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on create tag", "error", result.Error, "name", tag.Name)
			return model.ErrConflict
		}
		logger.Error("Error creating tag in DB", "error", result.Error, "name", tag.Name)
		return fmt.Errorf("gormTagRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormTagRepository) FindByID(ctx context.Context, db *gorm.DB, tagID uint) (*model.Tag, error) {
	logger := middleware.GetLogger(ctx)
	var tag model.Tag

	result := db.WithContext(ctx).First(&tag, tagID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding tag by ID in DB", "error", result.Error, "tag_id", tagID)
		return nil, fmt.Errorf("gormTagRepository.FindByID: %w", result.Error)
	}
	return &tag, nil
}

// FindByIDs は存在するタグだけを返します。存在しないIDはエラーにせず無視します。
func (r *gormTagRepository) FindByIDs(ctx context.Context, db *gorm.DB, tagIDs []uint) ([]model.Tag, error) {
	tags := []model.Tag{}
	if len(tagIDs) == 0 {
		return tags, nil
	}
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("id IN ?", tagIDs).Order("id ASC").Find(&tags)
	if result.Error != nil {
		logger.Error("Error finding tags by IDs in DB", "error", result.Error, "tag_ids", tagIDs)
		return nil, fmt.Errorf("gormTagRepository.FindByIDs: %w", result.Error)
	}
	return tags, nil
}

func (r *gormTagRepository) List(ctx context.Context, db *gorm.DB, page model.Page) ([]model.Tag, error) {
	logger := middleware.GetLogger(ctx)
	tags := []model.Tag{}

	result := db.WithContext(ctx).Order("name ASC").Offset(page.Skip).Limit(page.Limit).Find(&tags)
	if result.Error != nil {
		logger.Error("Error listing tags in DB", "error", result.Error)
		return nil, fmt.Errorf("gormTagRepository.List: %w", result.Error)
	}
	return tags, nil
}

func (r *gormTagRepository) Update(ctx context.Context, db *gorm.DB, tag *model.Tag) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Tag{ID: tag.ID}).
		Select(model.Columns(model.TagFields)).
		Updates(tag)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn("Duplicate key error on update tag", "error", result.Error, "tag_id", tag.ID, "name", tag.Name)
			return model.ErrConflict
		}
		logger.Error("Error updating tag in DB", "error", result.Error, "tag_id", tag.ID)
		return fmt.Errorf("gormTagRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete はタグと中間テーブルの関連行を削除します。ジャーナルやリクエスト自体は残ります。
func (r *gormTagRepository) Delete(ctx context.Context, db *gorm.DB, tagID uint) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Select("JournalEntries", "PrayerRequests").Delete(&model.Tag{ID: tagID})
	if result.Error != nil {
		logger.Error("Error deleting tag in DB", "error", result.Error, "tag_id", tagID)
		return fmt.Errorf("gormTagRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

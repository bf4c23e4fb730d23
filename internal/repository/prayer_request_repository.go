//go:generate mockery --name PrayerRequestRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"

	"gorm.io/gorm"
)

type PrayerRequestRepository interface {
	Create(ctx context.Context, db *gorm.DB, pr *model.PrayerRequest) error
	FindByID(ctx context.Context, db *gorm.DB, requestID uint) (*model.PrayerRequest, error)
	List(ctx context.Context, db *gorm.DB, filter model.PrayerRequestFilter) ([]model.PrayerRequest, error)
	Update(ctx context.Context, db *gorm.DB, pr *model.PrayerRequest) error
	ReplaceTags(ctx context.Context, db *gorm.DB, pr *model.PrayerRequest, tags []model.Tag) error
	SetAssignee(ctx context.Context, db *gorm.DB, requestID uint, personID *uint) error
	ClearAssignee(ctx context.Context, db *gorm.DB, personID uint) (int64, error)
	Delete(ctx context.Context, db *gorm.DB, requestID uint) error
}

type gormPrayerRequestRepository struct{}

func NewGormPrayerRequestRepository() PrayerRequestRepository {
	return &gormPrayerRequestRepository{}
}

func preloadPrayerRequest(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags", orderTagsByName).
		Preload("Updates", orderUpdatesByDate).
		Preload("AssignedTo")
}

// Create はリクエスト本体とタグの関連行を作成します。担当者・経過記録は作成しません。
func (r *gormPrayerRequestRepository) Create(ctx context.Context, db *gorm.DB, pr *model.PrayerRequest) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Omit("Tags.*", "AssignedTo", "JournalEntry", "Updates").Create(pr)
	if result.Error != nil {
		logger.Error("Error creating prayer request in DB", "error", result.Error, "title", pr.Title)
		return fmt.Errorf("gormPrayerRequestRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPrayerRequestRepository) FindByID(ctx context.Context, db *gorm.DB, requestID uint) (*model.PrayerRequest, error) {
	logger := middleware.GetLogger(ctx)
	var pr model.PrayerRequest

	result := preloadPrayerRequest(db.WithContext(ctx)).First(&pr, requestID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding prayer request by ID in DB", "error", result.Error, "request_id", requestID)
		return nil, fmt.Errorf("gormPrayerRequestRepository.FindByID: %w", result.Error)
	}
	return &pr, nil
}

func (r *gormPrayerRequestRepository) List(ctx context.Context, db *gorm.DB, filter model.PrayerRequestFilter) ([]model.PrayerRequest, error) {
	logger := middleware.GetLogger(ctx)
	requests := []model.PrayerRequest{}

	query := preloadPrayerRequest(db.WithContext(ctx))
	if filter.IsForMe != nil {
		query = query.Where("is_for_me = ?", *filter.IsForMe)
	}
	result := query.
		Order("created_at DESC, id DESC").
		Offset(filter.Page.Skip).Limit(filter.Page.Limit).
		Find(&requests)
	if result.Error != nil {
		logger.Error("Error listing prayer requests in DB", "error", result.Error)
		return nil, fmt.Errorf("gormPrayerRequestRepository.List: %w", result.Error)
	}
	return requests, nil
}

// Update はスカラー列 (担当者IDを含む) を全て上書きします
func (r *gormPrayerRequestRepository) Update(ctx context.Context, db *gorm.DB, pr *model.PrayerRequest) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.PrayerRequest{ID: pr.ID}).
		Select(model.Columns(model.PrayerRequestFields)).
		Updates(pr)
	if result.Error != nil {
		logger.Error("Error updating prayer request in DB", "error", result.Error, "request_id", pr.ID)
		return fmt.Errorf("gormPrayerRequestRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPrayerRequestRepository) ReplaceTags(ctx context.Context, db *gorm.DB, pr *model.PrayerRequest, tags []model.Tag) error {
	logger := middleware.GetLogger(ctx)

	assoc := db.WithContext(ctx).Model(&model.PrayerRequest{ID: pr.ID}).Association("Tags")
	var err error
	if len(tags) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(tags)
	}
	if err != nil {
		logger.Error("Error replacing prayer request tags in DB", "error", err, "request_id", pr.ID)
		return fmt.Errorf("gormPrayerRequestRepository.ReplaceTags: %w", err)
	}
	pr.Tags = tags
	return nil
}

// SetAssignee は担当者を設定します。personID が nil なら割り当てを解除します。
func (r *gormPrayerRequestRepository) SetAssignee(ctx context.Context, db *gorm.DB, requestID uint, personID *uint) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.PrayerRequest{ID: requestID}).Update("assigned_to_id", personID)
	if result.Error != nil {
		logger.Error("Error setting prayer request assignee in DB", "error", result.Error, "request_id", requestID)
		return fmt.Errorf("gormPrayerRequestRepository.SetAssignee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ClearAssignee は personID が割り当てられた全リクエストの担当者を解除し、件数を返します
func (r *gormPrayerRequestRepository) ClearAssignee(ctx context.Context, db *gorm.DB, personID uint) (int64, error) {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.PrayerRequest{}).
		Where("assigned_to_id = ?", personID).
		Update("assigned_to_id", nil)
	if result.Error != nil {
		logger.Error("Error clearing assignee in DB", "error", result.Error, "person_id", personID)
		return 0, fmt.Errorf("gormPrayerRequestRepository.ClearAssignee: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete はリクエストと、それが所有する経過記録・タグの関連行を削除します
func (r *gormPrayerRequestRepository) Delete(ctx context.Context, db *gorm.DB, requestID uint) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Select("Tags", "Updates").Delete(&model.PrayerRequest{ID: requestID})
	if result.Error != nil {
		logger.Error("Error deleting prayer request in DB", "error", result.Error, "request_id", requestID)
		return fmt.Errorf("gormPrayerRequestRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

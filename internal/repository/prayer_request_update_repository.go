//go:generate mockery --name PrayerRequestUpdateRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"

	"gorm.io/gorm"
)

// PrayerRequestUpdateRepository の操作は全て親リクエストのIDでスコープされます
type PrayerRequestUpdateRepository interface {
	Create(ctx context.Context, db *gorm.DB, update *model.PrayerRequestUpdate) error
	FindByID(ctx context.Context, db *gorm.DB, requestID, updateID uint) (*model.PrayerRequestUpdate, error)
	ListByPrayerRequest(ctx context.Context, db *gorm.DB, requestID uint) ([]model.PrayerRequestUpdate, error)
	Update(ctx context.Context, db *gorm.DB, update *model.PrayerRequestUpdate) error
	Delete(ctx context.Context, db *gorm.DB, requestID, updateID uint) error
}

type gormPrayerRequestUpdateRepository struct{}

func NewGormPrayerRequestUpdateRepository() PrayerRequestUpdateRepository {
	return &gormPrayerRequestUpdateRepository{}
}

func (r *gormPrayerRequestUpdateRepository) Create(ctx context.Context, db *gorm.DB, update *model.PrayerRequestUpdate) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(update)
	if result.Error != nil {
		logger.Error("Error creating prayer request update in DB", "error", result.Error, "request_id", update.PrayerRequestID)
		return fmt.Errorf("gormPrayerRequestUpdateRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPrayerRequestUpdateRepository) FindByID(ctx context.Context, db *gorm.DB, requestID, updateID uint) (*model.PrayerRequestUpdate, error) {
	logger := middleware.GetLogger(ctx)
	var update model.PrayerRequestUpdate

	result := db.WithContext(ctx).Where("prayer_request_id = ? AND id = ?", requestID, updateID).First(&update)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding prayer request update in DB", "error", result.Error, "request_id", requestID, "update_id", updateID)
		return nil, fmt.Errorf("gormPrayerRequestUpdateRepository.FindByID: %w", result.Error)
	}
	return &update, nil
}

func (r *gormPrayerRequestUpdateRepository) ListByPrayerRequest(ctx context.Context, db *gorm.DB, requestID uint) ([]model.PrayerRequestUpdate, error) {
	logger := middleware.GetLogger(ctx)
	updates := []model.PrayerRequestUpdate{}

	result := orderUpdatesByDate(db.WithContext(ctx)).Where("prayer_request_id = ?", requestID).Find(&updates)
	if result.Error != nil {
		logger.Error("Error listing prayer request updates in DB", "error", result.Error, "request_id", requestID)
		return nil, fmt.Errorf("gormPrayerRequestUpdateRepository.ListByPrayerRequest: %w", result.Error)
	}
	return updates, nil
}

func (r *gormPrayerRequestUpdateRepository) Update(ctx context.Context, db *gorm.DB, update *model.PrayerRequestUpdate) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.PrayerRequestUpdate{}).
		Where("prayer_request_id = ? AND id = ?", update.PrayerRequestID, update.ID).
		Select(model.Columns(model.PrayerRequestUpdateFields)).
		Updates(update)
	if result.Error != nil {
		logger.Error("Error updating prayer request update in DB", "error", result.Error, "update_id", update.ID)
		return fmt.Errorf("gormPrayerRequestUpdateRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormPrayerRequestUpdateRepository) Delete(ctx context.Context, db *gorm.DB, requestID, updateID uint) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("prayer_request_id = ?", requestID).Delete(&model.PrayerRequestUpdate{}, updateID)
	if result.Error != nil {
		logger.Error("Error deleting prayer request update in DB", "error", result.Error, "update_id", updateID)
		return fmt.Errorf("gormPrayerRequestUpdateRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

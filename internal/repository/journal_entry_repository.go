//go:generate mockery --name JournalEntryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"

	"gorm.io/gorm"
)

type JournalEntryRepository interface {
	Create(ctx context.Context, db *gorm.DB, entry *model.JournalEntry) error
	FindByID(ctx context.Context, db *gorm.DB, entryID uint) (*model.JournalEntry, error)
	List(ctx context.Context, db *gorm.DB, page model.Page) ([]model.JournalEntry, error)
	Update(ctx context.Context, db *gorm.DB, entry *model.JournalEntry) error
	ReplaceTags(ctx context.Context, db *gorm.DB, entry *model.JournalEntry, tags []model.Tag) error
	Delete(ctx context.Context, db *gorm.DB, entryID uint) error
}

type gormJournalEntryRepository struct{}

func NewGormJournalEntryRepository() JournalEntryRepository {
	return &gormJournalEntryRepository{}
}

// preloadJournalEntry はエントリー配下のグラフ全体を読み込みます。子の並びはID昇順。
func preloadJournalEntry(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags", orderTagsByName).
		Preload("PrayerRequests", func(db *gorm.DB) *gorm.DB {
			return db.Order("prayer_requests.id ASC")
		}).
		Preload("PrayerRequests.Tags", orderTagsByName).
		Preload("PrayerRequests.Updates", orderUpdatesByDate).
		Preload("PrayerRequests.AssignedTo")
}

func orderTagsByName(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name ASC")
}

func orderUpdatesByDate(db *gorm.DB) *gorm.DB {
	return db.Order("prayer_request_updates.date ASC, prayer_request_updates.id ASC")
}

// Create はエントリー本体とタグの関連行を作成します。
// タグは既存のものだけを紐付け、祈りのリクエストは呼び出し側で個別に作成します。
func (r *gormJournalEntryRepository) Create(ctx context.Context, db *gorm.DB, entry *model.JournalEntry) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Omit("Tags.*", "PrayerRequests").Create(entry)
	if result.Error != nil {
		logger.Error("Error creating journal entry in DB", "error", result.Error)
		return fmt.Errorf("gormJournalEntryRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormJournalEntryRepository) FindByID(ctx context.Context, db *gorm.DB, entryID uint) (*model.JournalEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.JournalEntry

	result := preloadJournalEntry(db.WithContext(ctx)).First(&entry, entryID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding journal entry by ID in DB", "error", result.Error, "entry_id", entryID)
		return nil, fmt.Errorf("gormJournalEntryRepository.FindByID: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormJournalEntryRepository) List(ctx context.Context, db *gorm.DB, page model.Page) ([]model.JournalEntry, error) {
	logger := middleware.GetLogger(ctx)
	entries := []model.JournalEntry{}

	result := preloadJournalEntry(db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error listing journal entries in DB", "error", result.Error)
		return nil, fmt.Errorf("gormJournalEntryRepository.List: %w", result.Error)
	}
	return entries, nil
}

// Update はスカラー列を全て上書きします (nil の title は NULL になる)
func (r *gormJournalEntryRepository) Update(ctx context.Context, db *gorm.DB, entry *model.JournalEntry) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.JournalEntry{ID: entry.ID}).
		Select(model.Columns(model.JournalEntryFields)).
		Updates(entry)
	if result.Error != nil {
		logger.Error("Error updating journal entry in DB", "error", result.Error, "entry_id", entry.ID)
		return fmt.Errorf("gormJournalEntryRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ReplaceTags はエントリーのタグ集合を tags に置き換えます
func (r *gormJournalEntryRepository) ReplaceTags(ctx context.Context, db *gorm.DB, entry *model.JournalEntry, tags []model.Tag) error {
	logger := middleware.GetLogger(ctx)

	assoc := db.WithContext(ctx).Model(&model.JournalEntry{ID: entry.ID}).Association("Tags")
	var err error
	if len(tags) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(tags)
	}
	if err != nil {
		logger.Error("Error replacing journal entry tags in DB", "error", err, "entry_id", entry.ID)
		return fmt.Errorf("gormJournalEntryRepository.ReplaceTags: %w", err)
	}
	entry.Tags = tags
	return nil
}

// Delete はエントリーとタグの関連行を削除します。配下の祈りのリクエストは呼び出し側で先に削除すること。
func (r *gormJournalEntryRepository) Delete(ctx context.Context, db *gorm.DB, entryID uint) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Select("Tags").Delete(&model.JournalEntry{ID: entryID})
	if result.Error != nil {
		logger.Error("Error deleting journal entry in DB", "error", result.Error, "entry_id", entryID)
		return fmt.Errorf("gormJournalEntryRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

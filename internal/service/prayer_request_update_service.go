//go:generate mockery --name PrayerRequestUpdateService --output ./mocks --outpkg mocks --case=underscore --structname MockPrayerRequestUpdateService
package service

import (
	"context"
	"time"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/repository"

	"gorm.io/gorm"
)

// PrayerRequestUpdateService は祈りのリクエストの経過記録を扱います。全ての操作は親リクエストでスコープされます。
type PrayerRequestUpdateService interface {
	CreatePrayerRequestUpdate(ctx context.Context, requestID uint, req *model.PrayerRequestUpdateRequest) (*model.PrayerRequestUpdate, error)
	GetPrayerRequestUpdate(ctx context.Context, requestID, updateID uint) (*model.PrayerRequestUpdate, error)
	ListPrayerRequestUpdates(ctx context.Context, requestID uint) ([]model.PrayerRequestUpdate, error)
	UpdatePrayerRequestUpdate(ctx context.Context, requestID, updateID uint, req *model.PrayerRequestUpdateRequest) (*model.PrayerRequestUpdate, error)
	DeletePrayerRequestUpdate(ctx context.Context, requestID, updateID uint) error
}

type prayerRequestUpdateService struct {
	db         *gorm.DB
	prRepo     repository.PrayerRequestRepository
	updateRepo repository.PrayerRequestUpdateRepository
	now        func() time.Time
}

func NewPrayerRequestUpdateService(db *gorm.DB, prRepo repository.PrayerRequestRepository, updateRepo repository.PrayerRequestUpdateRepository) PrayerRequestUpdateService {
	return &prayerRequestUpdateService{db: db, prRepo: prRepo, updateRepo: updateRepo, now: time.Now}
}

func (s *prayerRequestUpdateService) newUpdate(requestID uint, req *model.PrayerRequestUpdateRequest) *model.PrayerRequestUpdate {
	date := s.now()
	if req.Date != nil {
		date = *req.Date
	}
	return &model.PrayerRequestUpdate{
		Title:           req.Title,
		Content:         req.Content,
		Date:            date,
		PrayerRequestID: requestID,
	}
}

func (s *prayerRequestUpdateService) CreatePrayerRequestUpdate(ctx context.Context, requestID uint, req *model.PrayerRequestUpdateRequest) (*model.PrayerRequestUpdate, error) {
	var created *model.PrayerRequestUpdate

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.prRepo.FindByID(ctx, tx, requestID); err != nil {
			return replaceNotFound(err, errPrayerRequestNotFound)
		}
		update := s.newUpdate(requestID, req)
		if err := s.updateRepo.Create(ctx, tx, update); err != nil {
			return err
		}
		created = update
		return nil
	})
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to create prayer request update", err)
	}
	return created, nil
}

func (s *prayerRequestUpdateService) GetPrayerRequestUpdate(ctx context.Context, requestID, updateID uint) (*model.PrayerRequestUpdate, error) {
	update, err := s.updateRepo.FindByID(ctx, s.db, requestID, updateID)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to get prayer request update", replaceNotFound(err, errUpdateNotFound))
	}
	return update, nil
}

func (s *prayerRequestUpdateService) ListPrayerRequestUpdates(ctx context.Context, requestID uint) ([]model.PrayerRequestUpdate, error) {
	logger := middleware.GetLogger(ctx)

	if _, err := s.prRepo.FindByID(ctx, s.db, requestID); err != nil {
		return nil, translateError(logger, "Failed to list prayer request updates", replaceNotFound(err, errPrayerRequestNotFound))
	}
	updates, err := s.updateRepo.ListByPrayerRequest(ctx, s.db, requestID)
	if err != nil {
		return nil, translateError(logger, "Failed to list prayer request updates", err)
	}
	return updates, nil
}

// UpdatePrayerRequestUpdate は経過記録を上書きします。date が省略された場合は保存済みの日付を維持します。
func (s *prayerRequestUpdateService) UpdatePrayerRequestUpdate(ctx context.Context, requestID, updateID uint, req *model.PrayerRequestUpdateRequest) (*model.PrayerRequestUpdate, error) {
	var updated *model.PrayerRequestUpdate

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		update, err := s.updateRepo.FindByID(ctx, tx, requestID, updateID)
		if err != nil {
			return err
		}
		update.Title = req.Title
		update.Content = req.Content
		if req.Date != nil {
			update.Date = *req.Date
		}
		if err := s.updateRepo.Update(ctx, tx, update); err != nil {
			return err
		}

		updated, err = s.updateRepo.FindByID(ctx, tx, requestID, updateID)
		return err
	})
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to update prayer request update", replaceNotFound(err, errUpdateNotFound))
	}
	return updated, nil
}

func (s *prayerRequestUpdateService) DeletePrayerRequestUpdate(ctx context.Context, requestID, updateID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.updateRepo.Delete(ctx, tx, requestID, updateID)
	})
	if err != nil {
		return translateError(middleware.GetLogger(ctx), "Failed to delete prayer request update", replaceNotFound(err, errUpdateNotFound))
	}
	return nil
}

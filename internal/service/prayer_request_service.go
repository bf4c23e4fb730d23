//go:generate mockery --name PrayerRequestService --output ./mocks --outpkg mocks --case=underscore --structname MockPrayerRequestService
package service

import (
	"context"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/repository"

	"gorm.io/gorm"
)

type PrayerRequestService interface {
	CreatePrayerRequest(ctx context.Context, req *model.PrayerRequestRequest) (*model.PrayerRequest, error)
	GetPrayerRequest(ctx context.Context, requestID uint) (*model.PrayerRequest, error)
	ListPrayerRequests(ctx context.Context, filter model.PrayerRequestFilter) ([]model.PrayerRequest, error)
	UpdatePrayerRequest(ctx context.Context, requestID uint, req *model.PrayerRequestRequest) (*model.PrayerRequest, error)
	AssignPerson(ctx context.Context, requestID uint, personID *uint) (*model.PrayerRequest, error)
	DeletePrayerRequest(ctx context.Context, requestID uint) error
}

type prayerRequestService struct {
	db         *gorm.DB
	prRepo     repository.PrayerRequestRepository
	tagRepo    repository.TagRepository
	personRepo repository.PersonRepository
}

func NewPrayerRequestService(
	db *gorm.DB,
	prRepo repository.PrayerRequestRepository,
	tagRepo repository.TagRepository,
	personRepo repository.PersonRepository,
) PrayerRequestService {
	return &prayerRequestService{db: db, prRepo: prRepo, tagRepo: tagRepo, personRepo: personRepo}
}

// newPrayerRequest はリクエストDTOのスカラー項目からモデルを組み立てます (タグは含まない)
func newPrayerRequest(req *model.PrayerRequestRequest) *model.PrayerRequest {
	return &model.PrayerRequest{
		Title:        req.Title,
		Description:  req.Description,
		IsForMe:      req.IsForMe,
		Checked:      req.Checked,
		AssignedToID: req.AssignedToID,
	}
}

// CreatePrayerRequest はジャーナルに属さない祈りのリクエストを作成します
func (s *prayerRequestService) CreatePrayerRequest(ctx context.Context, req *model.PrayerRequestRequest) (*model.PrayerRequest, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.PrayerRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := newAssigneeChecker(s.personRepo).check(ctx, tx, req.AssignedToID, "assignedToId"); err != nil {
			return err
		}
		tags, err := loadTagSet(ctx, tx, s.tagRepo, req.Tags)
		if err != nil {
			return err
		}

		pr := newPrayerRequest(req)
		pr.Tags = tags.resolve(ctx, "prayer_request", req.Tags)
		if err := s.prRepo.Create(ctx, tx, pr); err != nil {
			return err
		}
		created, err = s.prRepo.FindByID(ctx, tx, pr.ID)
		return err
	})
	if err != nil {
		return nil, translateError(logger, "Failed to create prayer request", err)
	}
	logger.Info("Prayer request created", "request_id", created.ID)
	return created, nil
}

func (s *prayerRequestService) GetPrayerRequest(ctx context.Context, requestID uint) (*model.PrayerRequest, error) {
	pr, err := s.prRepo.FindByID(ctx, s.db, requestID)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to get prayer request", replaceNotFound(err, errPrayerRequestNotFound))
	}
	return pr, nil
}

func (s *prayerRequestService) ListPrayerRequests(ctx context.Context, filter model.PrayerRequestFilter) ([]model.PrayerRequest, error) {
	requests, err := s.prRepo.List(ctx, s.db, filter)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to list prayer requests", err)
	}
	return requests, nil
}

// UpdatePrayerRequest は全項目を上書きします。所属するジャーナルは変わりません。
func (s *prayerRequestService) UpdatePrayerRequest(ctx context.Context, requestID uint, req *model.PrayerRequestRequest) (*model.PrayerRequest, error) {
	var updated *model.PrayerRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.prRepo.FindByID(ctx, tx, requestID); err != nil {
			return replaceNotFound(err, errPrayerRequestNotFound)
		}
		if err := newAssigneeChecker(s.personRepo).check(ctx, tx, req.AssignedToID, "assignedToId"); err != nil {
			return err
		}
		tags, err := loadTagSet(ctx, tx, s.tagRepo, req.Tags)
		if err != nil {
			return err
		}

		pr := newPrayerRequest(req)
		pr.ID = requestID
		if err := s.prRepo.Update(ctx, tx, pr); err != nil {
			return err
		}
		if err := s.prRepo.ReplaceTags(ctx, tx, pr, tags.resolve(ctx, "prayer_request", req.Tags)); err != nil {
			return err
		}
		updated, err = s.prRepo.FindByID(ctx, tx, requestID)
		return err
	})
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to update prayer request", replaceNotFound(err, errPrayerRequestNotFound))
	}
	return updated, nil
}

// AssignPerson は担当者を設定します。personID が nil なら割り当てを解除します。
func (s *prayerRequestService) AssignPerson(ctx context.Context, requestID uint, personID *uint) (*model.PrayerRequest, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.PrayerRequest

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := newAssigneeChecker(s.personRepo).check(ctx, tx, personID, "personId"); err != nil {
			return err
		}
		if err := s.prRepo.SetAssignee(ctx, tx, requestID, personID); err != nil {
			return replaceNotFound(err, errPrayerRequestNotFound)
		}
		var err error
		updated, err = s.prRepo.FindByID(ctx, tx, requestID)
		return err
	})
	if err != nil {
		return nil, translateError(logger, "Failed to assign person", replaceNotFound(err, errPrayerRequestNotFound))
	}
	logger.Info("Prayer request assignee changed", "request_id", requestID, "person_id", personID)
	return updated, nil
}

// DeletePrayerRequest はリクエストと経過記録を削除します
func (s *prayerRequestService) DeletePrayerRequest(ctx context.Context, requestID uint) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.prRepo.Delete(ctx, tx, requestID)
	})
	if err != nil {
		return translateError(logger, "Failed to delete prayer request", replaceNotFound(err, errPrayerRequestNotFound))
	}
	logger.Info("Prayer request deleted", "request_id", requestID)
	return nil
}

//go:generate mockery --name TagService --output ./mocks --outpkg mocks --case=underscore --structname MockTagService
package service

import (
	"context"
	"errors"
	"strings"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/repository"

	"gorm.io/gorm"
)

type TagService interface {
	CreateTag(ctx context.Context, req *model.TagRequest) (*model.Tag, error)
	GetTag(ctx context.Context, tagID uint) (*model.Tag, error)
	ListTags(ctx context.Context, page model.Page) ([]model.Tag, error)
	UpdateTag(ctx context.Context, tagID uint, req *model.TagRequest) (*model.Tag, error)
	DeleteTag(ctx context.Context, tagID uint) error
}

type tagService struct {
	db      *gorm.DB
	tagRepo repository.TagRepository
}

func NewTagService(db *gorm.DB, tagRepo repository.TagRepository) TagService {
	return &tagService{db: db, tagRepo: tagRepo}
}

func (s *tagService) CreateTag(ctx context.Context, req *model.TagRequest) (*model.Tag, error) {
	logger := middleware.GetLogger(ctx)

	tag := &model.Tag{Name: strings.TrimSpace(req.Name)}
	if err := s.tagRepo.Create(ctx, s.db, tag); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, errTagNameConflict
		}
		return nil, translateError(logger, "Failed to create tag", err)
	}
	logger.Info("Tag created", "tag_id", tag.ID)
	return tag, nil
}

func (s *tagService) GetTag(ctx context.Context, tagID uint) (*model.Tag, error) {
	tag, err := s.tagRepo.FindByID(ctx, s.db, tagID)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to get tag", replaceNotFound(err, errTagNotFound))
	}
	return tag, nil
}

func (s *tagService) ListTags(ctx context.Context, page model.Page) ([]model.Tag, error) {
	tags, err := s.tagRepo.List(ctx, s.db, page)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to list tags", err)
	}
	return tags, nil
}

func (s *tagService) UpdateTag(ctx context.Context, tagID uint, req *model.TagRequest) (*model.Tag, error) {
	logger := middleware.GetLogger(ctx)

	tag := &model.Tag{ID: tagID, Name: strings.TrimSpace(req.Name)}
	if err := s.tagRepo.Update(ctx, s.db, tag); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, errTagNameConflict
		}
		return nil, translateError(logger, "Failed to update tag", replaceNotFound(err, errTagNotFound))
	}
	return tag, nil
}

// DeleteTag はタグを削除します。付与されていたジャーナルとリクエストからは外れるだけで、それ自体は残ります。
func (s *tagService) DeleteTag(ctx context.Context, tagID uint) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.tagRepo.Delete(ctx, tx, tagID)
	})
	if err != nil {
		return translateError(logger, "Failed to delete tag", replaceNotFound(err, errTagNotFound))
	}
	logger.Info("Tag deleted", "tag_id", tagID)
	return nil
}

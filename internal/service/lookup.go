// internal/service/lookup.go
package service

import (
	"context"
	"errors"
	"fmt"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/reconcile"
	"go_5_prayer_journal/internal/repository"

	"gorm.io/gorm"
)

// tagSet はリクエスト全体で参照されるタグを1回のクエリでまとめて読み込んだものです
type tagSet struct {
	known []model.Tag
}

func loadTagSet(ctx context.Context, db *gorm.DB, repo repository.TagRepository, ids ...[]uint) (*tagSet, error) {
	var all []uint
	for _, list := range ids {
		all = append(all, list...)
	}
	known, err := repo.FindByIDs(ctx, db, reconcile.UniqueIDs(all))
	if err != nil {
		return nil, err
	}
	return &tagSet{known: known}, nil
}

// resolve は存在するタグだけを返し、存在しないIDはログに残して無視します
func (ts *tagSet) resolve(ctx context.Context, owner string, ids []uint) []model.Tag {
	resolved, dropped := reconcile.ResolveTags(ids, ts.known)
	if len(dropped) > 0 {
		middleware.GetLogger(ctx).Info("Ignoring unknown tag ids", "owner", owner, "tag_ids", dropped)
	}
	return resolved
}

// assigneeChecker は担当者IDの存在確認結果をリクエスト内でキャッシュします
type assigneeChecker struct {
	repo    repository.PersonRepository
	checked map[uint]bool
}

func newAssigneeChecker(repo repository.PersonRepository) *assigneeChecker {
	return &assigneeChecker{repo: repo, checked: make(map[uint]bool)}
}

// check は personID が nil か、存在する担当者を指していれば nil を返します
func (a *assigneeChecker) check(ctx context.Context, db *gorm.DB, personID *uint, field string) error {
	if personID == nil {
		return nil
	}
	exists, ok := a.checked[*personID]
	if !ok {
		_, err := a.repo.FindByID(ctx, db, *personID)
		switch {
		case err == nil:
			exists = true
		case errors.Is(err, model.ErrNotFound):
			exists = false
		default:
			return fmt.Errorf("assigneeChecker.check: %w", err)
		}
		a.checked[*personID] = exists
	}
	if !exists {
		return newAssigneeNotFoundError(field)
	}
	return nil
}

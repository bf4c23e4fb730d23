//go:generate mockery --name JournalService --output ./mocks --outpkg mocks --case=underscore --structname MockJournalService
package service

import (
	"context"
	"fmt"
	"strings"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/reconcile"
	"go_5_prayer_journal/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JournalService interface {
	CreateJournalEntry(ctx context.Context, req *model.JournalEntryRequest) (*model.JournalEntry, error)
	GetJournalEntry(ctx context.Context, entryID uint) (*model.JournalEntry, error)
	ListJournalEntries(ctx context.Context, page model.Page) ([]model.JournalEntry, error)
	UpdateJournalEntry(ctx context.Context, entryID uint, req *model.JournalEntryRequest) (*model.JournalEntry, error)
	DeleteJournalEntry(ctx context.Context, entryID uint) error
}

type journalService struct {
	db         *gorm.DB
	entryRepo  repository.JournalEntryRepository
	prRepo     repository.PrayerRequestRepository
	tagRepo    repository.TagRepository
	personRepo repository.PersonRepository
}

func NewJournalService(
	db *gorm.DB,
	entryRepo repository.JournalEntryRepository,
	prRepo repository.PrayerRequestRepository,
	tagRepo repository.TagRepository,
	personRepo repository.PersonRepository,
) JournalService {
	return &journalService{
		db:         db,
		entryRepo:  entryRepo,
		prRepo:     prRepo,
		tagRepo:    tagRepo,
		personRepo: personRepo,
	}
}

// requestTagIDs はエントリーと配下のリクエストが参照するタグIDを全て集めます
func requestTagIDs(req *model.JournalEntryRequest) [][]uint {
	ids := make([][]uint, 0, len(req.PrayerRequests)+1)
	ids = append(ids, req.Tags)
	for _, pr := range req.PrayerRequests {
		ids = append(ids, pr.Tags)
	}
	return ids
}

func applyEntryFields(entry *model.JournalEntry, req *model.JournalEntryRequest) {
	entry.Title = req.Title
	entry.Content = req.Content
	// 省略時も null ではなく空配列で保存する
	entry.BibleVerses = append(datatypes.JSONSlice[string]{}, req.BibleVerses...)
}

func (s *journalService) CreateJournalEntry(ctx context.Context, req *model.JournalEntryRequest) (*model.JournalEntry, error) {
	logger := middleware.GetLogger(ctx)
	var created *model.JournalEntry

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tags, err := loadTagSet(ctx, tx, s.tagRepo, requestTagIDs(req)...)
		if err != nil {
			return err
		}
		assignees := newAssigneeChecker(s.personRepo)

		entry := &model.JournalEntry{}
		applyEntryFields(entry, req)
		entry.Tags = tags.resolve(ctx, "journal_entry", req.Tags)
		if err := s.entryRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		// 新規作成時は送信されたIDに関わらず全て作成
		for _, c := range indexChildren(req.PrayerRequests) {
			if err := s.createChild(ctx, tx, entry.ID, c, tags, assignees); err != nil {
				return err
			}
		}

		created, err = s.entryRepo.FindByID(ctx, tx, entry.ID)
		return err
	})
	if err != nil {
		return nil, translateError(logger, "Failed to create journal entry", err)
	}
	logger.Info("Journal entry created", "entry_id", created.ID, "prayer_requests", len(created.PrayerRequests))
	return created, nil
}

func (s *journalService) GetJournalEntry(ctx context.Context, entryID uint) (*model.JournalEntry, error) {
	entry, err := s.entryRepo.FindByID(ctx, s.db, entryID)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to get journal entry", replaceNotFound(err, errJournalEntryNotFound))
	}
	return entry, nil
}

func (s *journalService) ListJournalEntries(ctx context.Context, page model.Page) ([]model.JournalEntry, error) {
	entries, err := s.entryRepo.List(ctx, s.db, page)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to list journal entries", err)
	}
	return entries, nil
}

// UpdateJournalEntry はエントリーを送信内容で丸ごと置き換えます。
// prayerRequests は配下の完全なリストとして扱い、既存の子との差分を1トランザクションで適用します。
// 途中で失敗した場合は全ての変更がロールバックされます。
func (s *journalService) UpdateJournalEntry(ctx context.Context, entryID uint, req *model.JournalEntryRequest) (*model.JournalEntry, error) {
	logger := middleware.GetLogger(ctx)
	var updated *model.JournalEntry
	var plan reconcile.Plan[model.PrayerRequest, submittedChild]

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.entryRepo.FindByID(ctx, tx, entryID)
		if err != nil {
			return replaceNotFound(err, errJournalEntryNotFound)
		}

		tags, err := loadTagSet(ctx, tx, s.tagRepo, requestTagIDs(req)...)
		if err != nil {
			return err
		}
		assignees := newAssigneeChecker(s.personRepo)

		applyEntryFields(entry, req)
		if err := s.entryRepo.Update(ctx, tx, entry); err != nil {
			return err
		}
		if err := s.entryRepo.ReplaceTags(ctx, tx, entry, tags.resolve(ctx, "journal_entry", req.Tags)); err != nil {
			return err
		}

		plan = reconcile.Diff(entry.PrayerRequests, indexChildren(req.PrayerRequests),
			func(pr model.PrayerRequest) uint { return pr.ID },
			func(c submittedChild) *uint { return c.ID },
		)
		if err := s.applyPlan(ctx, tx, entry.ID, plan, tags, assignees); err != nil {
			return err
		}

		updated, err = s.entryRepo.FindByID(ctx, tx, entryID)
		return err
	})
	if err != nil {
		return nil, translateError(logger, "Failed to update journal entry", err)
	}
	logger.Info("Journal entry updated",
		"entry_id", entryID,
		"deleted", len(plan.Delete),
		"updated", len(plan.Update),
		"created", len(plan.Create),
	)
	return updated, nil
}

// submittedChild は送信された子要素と、その送信順の位置です (エラーのフィールド表示用)
type submittedChild struct {
	model.PrayerRequestInput
	pos int
}

func indexChildren(inputs []model.PrayerRequestInput) []submittedChild {
	children := make([]submittedChild, len(inputs))
	for i, in := range inputs {
		children[i] = submittedChild{PrayerRequestInput: in, pos: i}
	}
	return children
}

// applyPlan は Diff の結果を削除・更新・作成の順に適用します
func (s *journalService) applyPlan(
	ctx context.Context,
	tx *gorm.DB,
	entryID uint,
	plan reconcile.Plan[model.PrayerRequest, submittedChild],
	tags *tagSet,
	assignees *assigneeChecker,
) error {
	for _, id := range plan.Delete {
		if err := s.prRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("delete prayer request %d: %w", id, err)
		}
	}

	for _, m := range plan.Update {
		in := m.Submitted
		if err := assignees.check(ctx, tx, in.AssignedToID, assigneeField(in.pos)); err != nil {
			return err
		}
		pr := newPrayerRequest(&in.PrayerRequestRequest)
		pr.ID = m.Current.ID
		pr.JournalEntryID = &entryID
		if err := s.prRepo.Update(ctx, tx, pr); err != nil {
			return fmt.Errorf("update prayer request %d: %w", pr.ID, err)
		}
		if err := s.prRepo.ReplaceTags(ctx, tx, pr, tags.resolve(ctx, "prayer_request", in.Tags)); err != nil {
			return err
		}
	}

	for _, c := range plan.Create {
		if err := s.createChild(ctx, tx, entryID, c, tags, assignees); err != nil {
			return err
		}
	}
	return nil
}

func assigneeField(pos int) string {
	return fmt.Sprintf("prayerRequests[%d].assignedToId", pos)
}

// createChild はエントリー配下に祈りのリクエストを1件作成します。送信されたIDは使いません。
func (s *journalService) createChild(
	ctx context.Context,
	tx *gorm.DB,
	entryID uint,
	in submittedChild,
	tags *tagSet,
	assignees *assigneeChecker,
) error {
	if err := assignees.check(ctx, tx, in.AssignedToID, assigneeField(in.pos)); err != nil {
		return err
	}
	pr := newPrayerRequest(&in.PrayerRequestRequest)
	pr.JournalEntryID = &entryID
	pr.Tags = tags.resolve(ctx, "prayer_request", in.Tags)
	if err := s.prRepo.Create(ctx, tx, pr); err != nil {
		return fmt.Errorf("create prayer request %q: %w", strings.TrimSpace(pr.Title), err)
	}
	return nil
}

// DeleteJournalEntry はエントリーと、それが所有する祈りのリクエスト (経過記録を含む) を削除します。
// タグと担当者は削除しません。
func (s *journalService) DeleteJournalEntry(ctx context.Context, entryID uint) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry, err := s.entryRepo.FindByID(ctx, tx, entryID)
		if err != nil {
			return replaceNotFound(err, errJournalEntryNotFound)
		}
		for _, pr := range entry.PrayerRequests {
			if err := s.prRepo.Delete(ctx, tx, pr.ID); err != nil {
				return err
			}
		}
		return s.entryRepo.Delete(ctx, tx, entryID)
	})
	if err != nil {
		return translateError(logger, "Failed to delete journal entry", err)
	}
	logger.Info("Journal entry deleted", "entry_id", entryID)
	return nil
}

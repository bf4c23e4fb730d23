package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/repository"
)

// fixture は実リポジトリとインメモリSQLiteで組み立てたサービス群です
type fixture struct {
	ctx context.Context
	db  *gorm.DB

	tagRepo    repository.TagRepository
	personRepo repository.PersonRepository
	entryRepo  repository.JournalEntryRepository
	prRepo     repository.PrayerRequestRepository
	updateRepo repository.PrayerRequestUpdateRepository

	tags     TagService
	people   PersonService
	journal  JournalService
	requests PrayerRequestService
	updates  PrayerRequestUpdateService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := repository.NewDB(repository.DriverSQLite, dsn, logger)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	f := &fixture{
		ctx:        middleware.WithLogger(context.Background(), logger),
		db:         db,
		tagRepo:    repository.NewGormTagRepository(),
		personRepo: repository.NewGormPersonRepository(),
		entryRepo:  repository.NewGormJournalEntryRepository(),
		prRepo:     repository.NewGormPrayerRequestRepository(),
		updateRepo: repository.NewGormPrayerRequestUpdateRepository(),
	}
	f.tags = NewTagService(db, f.tagRepo)
	f.people = NewPersonService(db, f.personRepo, f.prRepo)
	f.journal = NewJournalService(db, f.entryRepo, f.prRepo, f.tagRepo, f.personRepo)
	f.requests = NewPrayerRequestService(db, f.prRepo, f.tagRepo, f.personRepo)
	f.updates = NewPrayerRequestUpdateService(db, f.prRepo, f.updateRepo)
	return f
}

func (f *fixture) tag(t *testing.T, name string) *model.Tag {
	t.Helper()
	tag, err := f.tags.CreateTag(f.ctx, &model.TagRequest{Name: name})
	require.NoError(t, err)
	return tag
}

func (f *fixture) person(t *testing.T, first, last string) *model.Person {
	t.Helper()
	p, err := f.people.CreatePerson(f.ctx, &model.PersonRequest{FirstName: first, LastName: last})
	require.NoError(t, err)
	return p
}

func (f *fixture) count(t *testing.T, value interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(value).Count(&n).Error)
	return n
}

func child(id *uint, title string, tags ...uint) model.PrayerRequestInput {
	return model.PrayerRequestInput{
		ID:                   id,
		PrayerRequestRequest: model.PrayerRequestRequest{Title: title, Tags: tags},
	}
}

func idOf(pr model.PrayerRequest) *uint {
	id := pr.ID
	return &id
}

func requestIDs(prs []model.PrayerRequest) []uint {
	ids := make([]uint, len(prs))
	for i, pr := range prs {
		ids[i] = pr.ID
	}
	return ids
}

func tagNames(tags []model.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}

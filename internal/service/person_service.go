//go:generate mockery --name PersonService --output ./mocks --outpkg mocks --case=underscore --structname MockPersonService
package service

import (
	"context"
	"strings"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"
	"go_5_prayer_journal/internal/repository"

	"gorm.io/gorm"
)

type PersonService interface {
	CreatePerson(ctx context.Context, req *model.PersonRequest) (*model.Person, error)
	GetPerson(ctx context.Context, personID uint) (*model.Person, error)
	ListPeople(ctx context.Context, page model.Page) ([]model.Person, error)
	UpdatePerson(ctx context.Context, personID uint, req *model.PersonRequest) (*model.Person, error)
	DeletePerson(ctx context.Context, personID uint) error
}

type personService struct {
	db         *gorm.DB
	personRepo repository.PersonRepository
	prRepo     repository.PrayerRequestRepository
}

func NewPersonService(db *gorm.DB, personRepo repository.PersonRepository, prRepo repository.PrayerRequestRepository) PersonService {
	return &personService{db: db, personRepo: personRepo, prRepo: prRepo}
}

func (s *personService) CreatePerson(ctx context.Context, req *model.PersonRequest) (*model.Person, error) {
	person := &model.Person{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	if err := s.personRepo.Create(ctx, s.db, person); err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to create person", err)
	}
	return person, nil
}

func (s *personService) GetPerson(ctx context.Context, personID uint) (*model.Person, error) {
	person, err := s.personRepo.FindByID(ctx, s.db, personID)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to get person", replaceNotFound(err, errPersonNotFound))
	}
	return person, nil
}

func (s *personService) ListPeople(ctx context.Context, page model.Page) ([]model.Person, error) {
	people, err := s.personRepo.List(ctx, s.db, page)
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to list people", err)
	}
	return people, nil
}

func (s *personService) UpdatePerson(ctx context.Context, personID uint, req *model.PersonRequest) (*model.Person, error) {
	var updated *model.Person

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		person := &model.Person{
			ID:        personID,
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
		}
		if err := s.personRepo.Update(ctx, tx, person); err != nil {
			return err
		}
		found, err := s.personRepo.FindByID(ctx, tx, personID)
		if err != nil {
			return err
		}
		updated = found
		return nil
	})
	if err != nil {
		return nil, translateError(middleware.GetLogger(ctx), "Failed to update person", replaceNotFound(err, errPersonNotFound))
	}
	return updated, nil
}

// DeletePerson は担当者を削除し、割り当てられていたリクエストを未割り当てに戻します
func (s *personService) DeletePerson(ctx context.Context, personID uint) error {
	logger := middleware.GetLogger(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.personRepo.FindByID(ctx, tx, personID); err != nil {
			return err
		}
		cleared, err := s.prRepo.ClearAssignee(ctx, tx, personID)
		if err != nil {
			return err
		}
		if cleared > 0 {
			logger.Info("Unassigned prayer requests from deleted person", "person_id", personID, "count", cleared)
		}
		return s.personRepo.Delete(ctx, tx, personID)
	})
	if err != nil {
		return translateError(logger, "Failed to delete person", replaceNotFound(err, errPersonNotFound))
	}
	return nil
}

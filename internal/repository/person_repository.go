//go:generate mockery --name PersonRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_prayer_journal/internal/middleware"
	"go_5_prayer_journal/internal/model"

	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(ctx context.Context, db *gorm.DB, person *model.Person) error
	FindByID(ctx context.Context, db *gorm.DB, personID uint) (*model.Person, error)
	List(ctx context.Context, db *gorm.DB, page model.Page) ([]model.Person, error)
	Update(ctx context.Context, db *gorm.DB, person *model.Person) error
	Delete(ctx context.Context, db *gorm.DB, personID uint) error
}

type gormPersonRepository struct{}

func NewGormPersonRepository() PersonRepository {
	return &gormPersonRepository{}
}

func (r *gormPersonRepository) Create(ctx context.Context, db *gorm.DB, person *model.Person) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(person)
	if result.Error != nil {
		logger.Error("Error creating person in DB", "error", result.Error)
		return fmt.Errorf("gormPersonRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPersonRepository) FindByID(ctx context.Context, db *gorm.DB, personID uint) (*model.Person, error) {
	logger := middleware.GetLogger(ctx)
	var person model.Person

	result := db.WithContext(ctx).First(&person, personID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding person by ID in DB", "error", result.Error, "person_id", personID)
		return nil, fmt.Errorf("gormPersonRepository.FindByID: %w", result.Error)
	}
	return &person, nil
}

func (r *gormPersonRepository) List(ctx context.Context, db *gorm.DB, page model.Page) ([]model.Person, error) {
	logger := middleware.GetLogger(ctx)
	people := []model.Person{}

	result := db.WithContext(ctx).
		Order("last_name ASC, first_name ASC, id ASC").
		Offset(page.Skip).Limit(page.Limit).
		Find(&people)
	if result.Error != nil {
		logger.Error("Error listing people in DB", "error", result.Error)
		return nil, fmt.Errorf("gormPersonRepository.List: %w", result.Error)
	}
	return people, nil
}

func (r *gormPersonRepository) Update(ctx context.Context, db *gorm.DB, person *model.Person) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Model(&model.Person{ID: person.ID}).
		Select(model.Columns(model.PersonFields)).
		Updates(person)
	if result.Error != nil {
		logger.Error("Error updating person in DB", "error", result.Error, "person_id", person.ID)
		return fmt.Errorf("gormPersonRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Delete は担当者を削除します。割り当て済みのリクエストは呼び出し側で先に解除しておくこと。
func (r *gormPersonRepository) Delete(ctx context.Context, db *gorm.DB, personID uint) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Delete(&model.Person{}, personID)
	if result.Error != nil {
		logger.Error("Error deleting person in DB", "error", result.Error, "person_id", personID)
		return fmt.Errorf("gormPersonRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

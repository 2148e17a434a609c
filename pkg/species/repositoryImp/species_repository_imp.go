package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/species/repository"
)

const speciesNotFound = "Species not found"

type speciesRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SpeciesRepository { return &speciesRepo{db} }

func (r *speciesRepo) List(ctx context.Context) ([]entities.TreeSpecies, error) {
	out := []entities.TreeSpecies{}
	if err := r.db.WithContext(ctx).Order("common_name ASC").Find(&out).Error; err != nil {
		return nil, apperr.FromStore(err, speciesNotFound)
	}
	return out, nil
}

func (r *speciesRepo) FindByID(ctx context.Context, id uint) (*entities.TreeSpecies, error) {
	var s entities.TreeSpecies
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, apperr.FromStore(err, speciesNotFound)
	}
	return &s, nil
}

func (r *speciesRepo) Upsert(ctx context.Context, s *entities.TreeSpecies) (bool, error) {
	var cur entities.TreeSpecies
	err := r.db.WithContext(ctx).Where("LOWER(common_name) = LOWER(?)", s.CommonName).First(&cur).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, apperr.FromStore(r.db.WithContext(ctx).Create(s).Error, speciesNotFound)
	}
	if err != nil {
		return false, apperr.FromStore(err, speciesNotFound)
	}
	s.ID = cur.ID
	s.CreatedAt = cur.CreatedAt
	return false, apperr.FromStore(r.db.WithContext(ctx).Save(s).Error, speciesNotFound)
}

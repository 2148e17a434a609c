package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"msitumum/entities"
	"msitumum/pkg/apperr"
	"msitumum/pkg/biodiversity/repository"
)

const recordNotFound = "Biodiversity record not found"

type biodiversityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BiodiversityRepository { return &biodiversityRepo{db} }

func (r *biodiversityRepo) Create(ctx context.Context, b *entities.BiodiversityRecord) error {
	return apperr.FromStore(r.db.WithContext(ctx).Create(b).Error, recordNotFound)
}

func (r *biodiversityRepo) ListBySite(ctx context.Context, siteID uint) ([]repository.ObservationView, error) {
	out := []repository.ObservationView{}
	err := r.db.WithContext(ctx).
		Table("biodiversity_records AS b").
		Select("b.*, u.full_name AS observer_name").
		Joins("LEFT JOIN users u ON u.id = b.user_id").
		Where("b.site_id = ?", siteID).
		Order("b.observation_date ASC, b.id ASC").
		Scan(&out).Error
	if err != nil {
		return nil, apperr.FromStore(err, recordNotFound)
	}
	return out, nil
}

func (r *biodiversityRepo) first(ctx context.Context, siteID uint, kind, order string) (*entities.BiodiversityRecord, error) {
	var b entities.BiodiversityRecord
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND observation_type = ?", siteID, kind).
		Order(order).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.FromStore(err, recordNotFound)
	}
	return &b, nil
}

func (r *biodiversityRepo) EarliestOf(ctx context.Context, siteID uint, kind string) (*entities.BiodiversityRecord, error) {
	return r.first(ctx, siteID, kind, "observation_date ASC, id ASC")
}

func (r *biodiversityRepo) LatestOf(ctx context.Context, siteID uint, kind string) (*entities.BiodiversityRecord, error) {
	return r.first(ctx, siteID, kind, "observation_date DESC, id DESC")
}
